package devfolio_test

import (
	"fmt"

	"github.com/aretw0/devfolio"
)

func ExampleValidate() {
	res := devfolio.Validate(map[string]any{
		"basics": map[string]any{"name": "", "email": "invalid-email"},
	})

	fmt.Println(res.Success)
	fmt.Println(devfolio.FormatErrors(res.Errors))
	// Output:
	// false
	// 1. basics.name: Name is required
	// 2. basics.email: Invalid email
}

func ExampleNewMinimal() {
	doc := devfolio.NewMinimal("John Doe")

	res := devfolio.Validate(doc)
	fmt.Println(res.Success, res.Data.Basics.Name)
	// Output: true John Doe
}

func ExampleParse() {
	doc, err := devfolio.Parse([]byte(`{"work":[{"name":"Acme","position":"Engineer","startDate":"2020-01-01","teamSize":4}]}`))
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(doc.Work[0].Name, *doc.Work[0].TeamSize, doc.Schema == devfolio.SchemaURL)
	// Output: Acme 4 true
}

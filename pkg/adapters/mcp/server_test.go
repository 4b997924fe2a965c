package mcp_test

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/client"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/devfolio"
	"github.com/aretw0/devfolio/internal/adapters/memory"
	mcpadapter "github.com/aretw0/devfolio/pkg/adapters/mcp"
	"github.com/aretw0/devfolio/pkg/portfolio"
)

func newClient(t *testing.T, opts ...mcpadapter.Option) *client.Client {
	t.Helper()
	srv := mcpadapter.NewServer(devfolio.New(), opts...)

	c, err := client.NewInProcessClient(srv.MCPServer())
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })

	ctx := context.Background()
	require.NoError(t, c.Start(ctx))

	initReq := mcp.InitializeRequest{}
	initReq.Params.ProtocolVersion = mcp.LATEST_PROTOCOL_VERSION
	initReq.Params.ClientInfo = mcp.Implementation{Name: "devfolio-test", Version: "0.0.0"}
	_, err = c.Initialize(ctx, initReq)
	require.NoError(t, err)
	return c
}

func callTool(t *testing.T, c *client.Client, name string, args map[string]any) *mcp.CallToolResult {
	t.Helper()
	req := mcp.CallToolRequest{}
	req.Params.Name = name
	req.Params.Arguments = args
	res, err := c.CallTool(context.Background(), req)
	require.NoError(t, err)
	return res
}

func structured[T any](t *testing.T, res *mcp.CallToolResult) T {
	t.Helper()
	require.False(t, res.IsError, "tool returned an error: %v", res.Content)
	raw, err := json.Marshal(res.StructuredContent)
	require.NoError(t, err)
	var out T
	require.NoError(t, json.Unmarshal(raw, &out))
	return out
}

func text(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	require.NotEmpty(t, res.Content)
	tc, ok := mcp.AsTextContent(res.Content[0])
	require.True(t, ok, "expected text content, got %T", res.Content[0])
	return tc.Text
}

func TestServer_ListTools(t *testing.T) {
	ctx := context.Background()

	c := newClient(t)
	tools, err := c.ListTools(ctx, mcp.ListToolsRequest{})
	require.NoError(t, err)
	var names []string
	for _, tool := range tools.Tools {
		names = append(names, tool.Name)
	}
	assert.ElementsMatch(t, []string{"validate_portfolio", "create_minimal_portfolio", "format_errors", "list_fields"}, names)

	store := newClient(t, mcpadapter.WithManager(portfolio.NewManager(memory.New())))
	tools, err = store.ListTools(ctx, mcp.ListToolsRequest{})
	require.NoError(t, err)
	assert.Len(t, tools.Tools, 6)
}

func TestServer_Validate(t *testing.T) {
	c := newClient(t)

	t.Run("valid", func(t *testing.T) {
		res := callTool(t, c, "validate_portfolio", map[string]any{
			"document": map[string]any{
				"basics": map[string]any{"name": "Jane Doe"},
				"skills": []any{map[string]any{"name": "Go"}},
			},
		})
		out := structured[mcpadapter.ValidateResponse](t, res)
		assert.True(t, out.Success)
		require.NotNil(t, out.Stats)
		assert.Equal(t, 1, out.Stats.Skills)
		assert.Equal(t, "Jane Doe", out.Data["basics"].(map[string]any)["name"])
	})

	t.Run("invalid", func(t *testing.T) {
		res := callTool(t, c, "validate_portfolio", map[string]any{
			"document": map[string]any{
				"basics": map[string]any{"email": "invalid-email"},
			},
		})
		out := structured[mcpadapter.ValidateResponse](t, res)
		assert.False(t, out.Success)
		assert.Equal(t, []string{"basics.name: Required", "basics.email: Invalid email"}, out.Errors)
		assert.Equal(t, "1. basics.name: Required\n2. basics.email: Invalid email", out.Report)
	})
}

func TestServer_CreateMinimal(t *testing.T) {
	c := newClient(t)

	res := callTool(t, c, "create_minimal_portfolio", map[string]any{"name": "Jane Doe"})
	require.False(t, res.IsError)

	var doc map[string]any
	require.NoError(t, json.Unmarshal([]byte(text(t, res)), &doc))
	assert.Equal(t, devfolio.SchemaURL, doc["$schema"])
	assert.True(t, devfolio.IsValid(doc))

	res = callTool(t, c, "create_minimal_portfolio", map[string]any{})
	assert.True(t, res.IsError)
}

func TestServer_FormatErrors(t *testing.T) {
	c := newClient(t)

	res := callTool(t, c, "format_errors", map[string]any{"errors": []any{"a: Required", "b: Invalid url"}})
	assert.Equal(t, "1. a: Required\n2. b: Invalid url", text(t, res))
}

func TestServer_ListFields(t *testing.T) {
	c := newClient(t)

	out := text(t, callTool(t, c, "list_fields", nil))
	assert.Contains(t, out, "Basics: name\n")
	assert.Contains(t, out, "Work: name, position, startDate\n")
}

func TestServer_Store(t *testing.T) {
	mgr := portfolio.NewManager(memory.New())
	c := newClient(t, mcpadapter.WithManager(mgr))
	ctx := context.Background()

	res := callTool(t, c, "store_portfolio", map[string]any{
		"id":       "jane",
		"document": map[string]any{"basics": map[string]any{"name": "Jane Doe"}},
	})
	out := structured[mcpadapter.StoreResponse](t, res)
	assert.True(t, out.Success)
	assert.Equal(t, "jane", out.ID)
	require.NotNil(t, out.Diff)

	res = callTool(t, c, "store_portfolio", map[string]any{
		"id":       "john",
		"document": map[string]any{"basics": map[string]any{}},
	})
	out = structured[mcpadapter.StoreResponse](t, res)
	assert.False(t, out.Success)
	assert.Equal(t, []string{"basics.name: Required"}, out.Errors)

	assert.Equal(t, `["jane"]`, text(t, callTool(t, c, "list_portfolios", nil)))

	read := mcp.ReadResourceRequest{}
	read.Params.URI = "devfolio://portfolios/jane"
	contents, err := c.ReadResource(ctx, read)
	require.NoError(t, err)
	require.Len(t, contents.Contents, 1)
	tc, ok := contents.Contents[0].(mcp.TextResourceContents)
	require.True(t, ok)
	assert.Contains(t, tc.Text, `"name":"Jane Doe"`)

	read.Params.URI = "devfolio://portfolios/ghost"
	_, err = c.ReadResource(ctx, read)
	assert.Error(t, err)
}

func TestServer_SchemaResource(t *testing.T) {
	c := newClient(t)

	read := mcp.ReadResourceRequest{}
	read.Params.URI = "devfolio://schema"
	contents, err := c.ReadResource(context.Background(), read)
	require.NoError(t, err)
	require.Len(t, contents.Contents, 1)

	tc, ok := contents.Contents[0].(mcp.TextResourceContents)
	require.True(t, ok)
	assert.Equal(t, "application/schema+json", tc.MIMEType)
	assert.True(t, strings.Contains(tc.Text, `"basics"`))
}

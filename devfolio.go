package devfolio

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/aretw0/devfolio/pkg/catalog"
	"github.com/aretw0/devfolio/pkg/domain"
	"github.com/aretw0/devfolio/pkg/schema"
)

const (
	// Version of the DevFolio schema.
	Version = "1.0.0"
	// SchemaURL is the canonical location of the published JSON Schema.
	SchemaURL = domain.DefaultSchemaURL
)

// Document is the typed portfolio produced by a successful validation.
type Document = domain.Document

// Result is the outcome of a non-raising validation.
type Result struct {
	Success bool `json:"success"`
	// Data is the typed document. Unknown keys are not represented here.
	Data *Document `json:"-"`
	// Value is the normalized document, defaults applied and unknown keys
	// handled according to the validator's policy.
	Value map[string]any `json:"data,omitempty"`
	// Errors holds one "<path>: <message>" line per violation, in traversal order.
	Errors     []string           `json:"errors,omitempty"`
	Violations []schema.Violation `json:"violations,omitempty"`
}

// Validator validates portfolio documents against the DevFolio schema.
// It is safe for concurrent use.
type Validator struct {
	schema *schema.ObjectType
	opts   []schema.Option
	logger *slog.Logger
	hooks  domain.LifecycleHooks
	source string
}

// Option defines a functional option for configuring the Validator.
type Option func(*Validator)

// WithLogger sets a custom structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(v *Validator) {
		v.logger = logger
	}
}

// WithUnknownKeys sets how undeclared object keys are treated.
// The default is schema.Passthrough.
func WithUnknownKeys(policy schema.UnknownKeys) Option {
	return func(v *Validator) {
		v.opts = append(v.opts, schema.WithUnknownKeys(policy))
	}
}

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(v *Validator) {
		v.hooks = v.hooks.Merge(hooks)
	}
}

// WithSource labels emitted events with the calling surface (http, mcp, cli).
func WithSource(source string) Option {
	return func(v *Validator) {
		v.source = source
	}
}

// New creates a Validator for the composed DevFolio schema.
func New(opts ...Option) *Validator {
	v := &Validator{
		schema: catalog.Document(),
		source: "library",
	}
	for _, opt := range opts {
		opt(v)
	}
	if v.logger == nil {
		v.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return v
}

// Parse validates data and returns the typed document.
// On failure the error is a *schema.ValidationError listing every violation;
// inputs that cannot be read at all yield a plain error.
func (v *Validator) Parse(data any) (*Document, error) {
	value, err := v.parse(data)
	if err != nil {
		return nil, err
	}
	return decodeDocument(value)
}

// SafeParse validates data without failing. Violations are returned as data.
func (v *Validator) SafeParse(data any) Result {
	input, err := normalizeInput(data)
	if err != nil {
		v.logger.Debug("unreadable input", "error", err)
		return unknownResult()
	}

	start := time.Now()
	res := schema.Check(v.schema, input, v.opts...)
	v.observe(start, res.Violations)

	if !res.OK() {
		return failure(res.Violations)
	}
	return v.success(res.Value)
}

// Validate runs the strict form and converts its outcome into a Result.
// A failure that is not a validation error becomes the single message
// "Unknown validation error".
func (v *Validator) Validate(data any) Result {
	value, err := v.parse(data)
	if err != nil {
		if violations := schema.Violations(err); len(violations) > 0 {
			return failure(violations)
		}
		v.logger.Debug("validation failed", "error", err)
		return unknownResult()
	}
	return v.success(value)
}

// IsValid reports whether data is a valid portfolio.
func (v *Validator) IsValid(data any) bool {
	return v.SafeParse(data).Success
}

func (v *Validator) parse(data any) (any, error) {
	input, err := normalizeInput(data)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	value, err := schema.Parse(v.schema, input, v.opts...)
	v.observe(start, schema.Violations(err))
	return value, err
}

func (v *Validator) success(value any) Result {
	m, _ := value.(map[string]any)
	doc, err := decodeDocument(m)
	if err != nil {
		v.logger.Error("failed to decode validated document", "error", err)
		return unknownResult()
	}
	return Result{Success: true, Data: doc, Value: m}
}

func (v *Validator) observe(start time.Time, violations []schema.Violation) {
	elapsed := time.Since(start)
	v.logger.Debug("validation finished",
		"success", len(violations) == 0,
		"violations", len(violations),
		"duration", elapsed,
	)
	if v.hooks.OnValidate == nil {
		return
	}
	v.hooks.OnValidate(context.Background(), &domain.ValidationEvent{
		EventBase: domain.EventBase{
			Timestamp: start,
			Type:      domain.EventValidated,
			Source:    v.source,
		},
		Duration:   elapsed,
		Success:    len(violations) == 0,
		Violations: violations,
	})
}

func failure(violations []schema.Violation) Result {
	return Result{
		Errors:     schema.Messages(violations),
		Violations: violations,
	}
}

func unknownResult() Result {
	violation := schema.Violation{Path: schema.Path{}, Kind: schema.KindUnknown, Message: schema.UnknownMessage}
	return Result{
		Errors:     []string{schema.UnknownMessage},
		Violations: []schema.Violation{violation},
	}
}

// NewMinimal returns the smallest valid document: a name and the default
// $schema reference.
func NewMinimal(name string) *Document {
	return &Document{
		Schema: SchemaURL,
		Basics: &domain.Basics{Name: name},
	}
}

// FormatErrors numbers messages one per line: "1. <msg>\n2. <msg>".
func FormatErrors(errs []string) string {
	var b strings.Builder
	for i, msg := range errs {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "%d. %s", i+1, msg)
	}
	return b.String()
}

// IsValidationError reports whether err carries schema violations.
func IsValidationError(err error) bool {
	var verr *schema.ValidationError
	return errors.As(err, &verr)
}

var std = New()

// Parse validates data with the default validator and returns the typed document.
func Parse(data any) (*Document, error) { return std.Parse(data) }

// SafeParse validates data with the default validator without failing.
func SafeParse(data any) Result { return std.SafeParse(data) }

// Validate runs the strict form with the default validator and reports a Result.
func Validate(data any) Result { return std.Validate(data) }

// IsValid reports whether data is a valid portfolio.
func IsValid(data any) bool { return std.IsValid(data) }

package typescript

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"path"
	"strings"
	"text/template"

	"github.com/Masterminds/sprig/v3"

	"github.com/blimu-dev/tsclient-gen/pkg/config"
	"github.com/blimu-dev/tsclient-gen/pkg/ir"
	"github.com/blimu-dev/tsclient-gen/pkg/sink"
	"github.com/blimu-dev/tsclient-gen/pkg/utils"
)

//go:embed templates/*
var templatesFS embed.FS

// DefaultHeader is prepended to every generated file unless the client
// configures its own header.
var DefaultHeader = []string{
	"/* eslint-disable */",
	"// This file was generated by tsclient-gen. Do not edit it by hand.",
}

// TypeScriptGenerator emits utils.ts, models.ts and one services/<Name>.ts
// per service unit.
type TypeScriptGenerator struct{}

// NewTypeScriptGenerator creates a new TypeScript generator
func NewTypeScriptGenerator() *TypeScriptGenerator {
	return &TypeScriptGenerator{}
}

// GetType returns the generator type identifier
func (g *TypeScriptGenerator) GetType() string {
	return "typescript"
}

// Generate renders the program and writes every file to out. Files are
// written in a fixed order: utils.ts, models.ts, then services in program
// order.
func (g *TypeScriptGenerator) Generate(ctx context.Context, client config.Client, prog *ir.Program, out sink.OutputSink) error {
	funcMap := template.FuncMap{
		"tsType":   Render,
		"tsString": printString,
	}
	// Merge sprig functions
	for k, v := range sprig.TxtFuncMap() {
		if _, exists := funcMap[k]; !exists {
			funcMap[k] = v
		}
	}

	header := client.Header
	if header == nil {
		header = DefaultHeader
	}

	if err := renderFile(ctx, out, "utils.ts.gotmpl", "utils.ts", funcMap, map[string]any{
		"Header": header,
	}); err != nil {
		return err
	}

	if err := renderFile(ctx, out, "models.ts.gotmpl", "models.ts", funcMap, map[string]any{
		"Header": header,
		"Models": prog.Models,
	}); err != nil {
		return err
	}

	for _, unit := range prog.Services {
		target := path.Join("services", unit.Name+".ts")
		if err := renderFile(ctx, out, "service.ts.gotmpl", target, funcMap, map[string]any{
			"Header":  header,
			"Service": newServiceView(unit),
		}); err != nil {
			return err
		}
	}
	return nil
}

// renderFile renders a template and hands the result to the sink
func renderFile(ctx context.Context, out sink.OutputSink, templateName, targetPath string, funcMap template.FuncMap, data map[string]any) error {
	tmplContent, err := templatesFS.ReadFile("templates/" + templateName)
	if err != nil {
		return fmt.Errorf("failed to read template %s: %w", templateName, err)
	}

	tmpl, err := template.New(templateName).Funcs(funcMap).Parse(string(tmplContent))
	if err != nil {
		return fmt.Errorf("failed to parse template %s: %w", templateName, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return fmt.Errorf("failed to execute template %s: %w", templateName, err)
	}

	if err := out.WriteFile(ctx, targetPath, buf.Bytes()); err != nil {
		return fmt.Errorf("failed to write %s: %w", targetPath, err)
	}
	return nil
}

type serviceView struct {
	Name    string
	Imports []string
	Methods []methodView
}

// methodView holds the pre-printed pieces of one service method.
type methodView struct {
	Name         string
	Params       string
	PathBinding  string
	ResponseType string
	URL          string
	HTTPMethod   string
	QueryParams  string
	BodyArgs     string
}

func newServiceView(unit *ir.ServiceUnit) serviceView {
	view := serviceView{Name: unit.Name, Imports: unit.ImportNames()}
	for _, op := range unit.OperationList() {
		view.Methods = append(view.Methods, newMethodView(op))
	}
	return view
}

// Method bodies sit at level 2 inside the class; the adapter call's object
// literal entries at level 3.
const (
	methodLevel = 1
	bodyLevel   = 2
	callLevel   = 3
)

func newMethodView(op ir.OperationDescriptor) methodView {
	m := methodView{
		Name:         op.MethodName,
		ResponseType: "void",
		URL:          printStringTemplate("${baseUrl}" + pathToTemplate(op.Path)),
		HTTPMethod:   strings.ToUpper(op.Method),
		QueryParams:  "undefined",
		BodyArgs:     "undefined",
	}

	if op.Body != nil || len(op.Params) > 0 {
		var fields []string
		if op.Body != nil {
			fields = append(fields, printNamedField(utils.QuotePropertyName(op.Body.ArgumentName), renderAt(op.Body.Type, methodLevel+1), op.Body.Required))
		}
		for _, p := range op.Params {
			fields = append(fields, printNamedField(utils.QuotePropertyName(p.Name), renderAt(p.Type, methodLevel+1), p.Required))
		}
		m.Params = "props: " + printObjectType(fields, methodLevel)
	}

	if pathParams := op.PathParams(); len(pathParams) > 0 {
		names := make([]string, 0, len(pathParams))
		for _, p := range pathParams {
			names = append(names, bindingEntry(p.Name))
		}
		m.PathBinding = printDestructure("props", names)
	}

	if op.Response != nil {
		m.ResponseType = renderAt(op.Response.Type, bodyLevel)
	}

	if queryParams := op.QueryParams(); len(queryParams) > 0 {
		entries := make([]string, 0, len(queryParams))
		for _, p := range queryParams {
			entries = append(entries, utils.QuotePropertyName(p.Name)+": "+printPropAccess(p.Name))
		}
		m.QueryParams = printRecord(entries, callLevel)
	}

	if op.Body != nil {
		m.BodyArgs = printPropAccess(op.Body.ArgumentName)
	}
	return m
}

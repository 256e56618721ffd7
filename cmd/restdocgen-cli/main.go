package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"os"
	"strings"

	"github.com/restdocgen/restdocgen/pkg/descriptor"
	"github.com/restdocgen/restdocgen/pkg/generator"
	"github.com/restdocgen/restdocgen/pkg/operation"
	pkgopenapi "github.com/restdocgen/restdocgen/pkg/openapi"
)

// capturedRequest mirrors the JSON layout of a recorded interaction:
//
//	{"name": "list-users", "method": "GET", "uri": "/users?page=2", "headers": {"Content-Type": "..."}, "body": "..."}
type capturedRequest struct {
	Name    string            `json:"name"`
	Method  string            `json:"method"`
	URI     string            `json:"uri"`
	Headers map[string]string `json:"headers"`
	Body    string            `json:"body"`
}

func main() {
	source := flag.String("source", "", "OpenAPI document path or URL declaring the parameters")
	declaration := flag.String("declaration", "", "YAML descriptor declaration file (alternative to -source)")
	opID := flag.String("operation", "", "operation ID to document (required with -source)")
	requestPath := flag.String("request", "", "captured request JSON file")
	format := flag.String("format", "asciidoctor", "output format (asciidoctor, adoc, markdown, md)")
	output := flag.String("output", "", "output file (stdout if empty)")
	flag.Parse()

	if *requestPath == "" {
		log.Fatal("a captured request file is required (-request)")
	}

	ctx := context.Background()

	op, err := loadCapturedRequest(*requestPath)
	if err != nil {
		log.Fatalf("Failed to load captured request: %v", err)
	}

	req := generator.Request{
		Operation: op,
		Format:    *format,
	}

	switch {
	case *declaration != "":
		descriptors, err := descriptor.LoadYAML(*declaration)
		if err != nil {
			log.Fatalf("Failed to load declaration: %v", err)
		}
		req.Descriptors = descriptors
	case *source != "":
		src := parseSource(*source)
		if src == nil {
			log.Fatalf("invalid source: %q", *source)
		}
		if *opID == "" {
			log.Fatal("an operation ID is required with -source (-operation)")
		}
		req.Source = src
		req.OperationID = *opID
	default:
		log.Fatal("either -source or -declaration is required")
	}

	gen := generator.New(generator.WithLoaderOptions(pkgopenapi.WithHTTPFallback(true)))

	snippetBytes, err := gen.Generate(ctx, req)
	if err != nil {
		log.Fatalf("Failed to generate snippet: %v", err)
	}

	if *output != "" {
		if err := os.WriteFile(*output, snippetBytes, 0o644); err != nil {
			log.Fatalf("Failed to write output: %v", err)
		}
		fmt.Printf("Snippet written to %s\n", *output)
	} else {
		fmt.Println(string(snippetBytes))
	}
}

func loadCapturedRequest(path string) (operation.Operation, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return operation.Operation{}, err
	}
	var captured capturedRequest
	if err := json.Unmarshal(data, &captured); err != nil {
		return operation.Operation{}, fmt.Errorf("parse captured request: %w", err)
	}

	parsed, err := url.Parse(captured.URI)
	if err != nil {
		return operation.Operation{}, fmt.Errorf("parse request uri: %w", err)
	}
	header := make(http.Header, len(captured.Headers))
	for name, value := range captured.Headers {
		header.Set(name, value)
	}
	name := captured.Name
	if name == "" {
		name = strings.ToLower(captured.Method) + "-" + strings.Trim(parsed.Path, "/")
	}
	return operation.New(name, operation.Request{
		Method: captured.Method,
		URL:    parsed,
		Header: header,
		Body:   []byte(captured.Body),
	})
}

func parseSource(raw string) pkgopenapi.Source {
	path := strings.TrimSpace(raw)
	if path == "" {
		return nil
	}
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return pkgopenapi.SourceFromURL(path)
	}
	return pkgopenapi.SourceFromFile(path)
}

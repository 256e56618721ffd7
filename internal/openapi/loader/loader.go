package loader

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"mime"
	"net/http"
	"os"
	"time"

	pkgopenapi "github.com/restdocgen/restdocgen/pkg/openapi"
)

// maxDocumentBytes caps how much a URL source may deliver.
const maxDocumentBytes = 16 << 20

// documentMediaTypes lists the response media types accepted from URL
// sources. Servers that omit the header fall through Go's content sniffing,
// which reports JSON payloads as text/plain.
var documentMediaTypes = map[string]bool{
	"application/json":                 true,
	"application/yaml":                 true,
	"application/x-yaml":               true,
	"application/vnd.oai.openapi":      true,
	"application/vnd.oai.openapi+json": true,
	"text/yaml":                        true,
	"text/x-yaml":                      true,
	"text/plain":                       true,
}

// Loader implements pkgopenapi.Loader. Beyond fetching bytes it rejects
// payloads that cannot be OpenAPI documents, so callers get a loader error
// naming the source instead of a parse error naming nothing.
type Loader struct {
	fs      fs.FS
	client  *http.Client
	timeout time.Duration
}

var _ pkgopenapi.Loader = (*Loader)(nil)

// New constructs a Loader from pre-resolved options. URL sources stay
// disabled unless the options carry an HTTP client or enable the fallback.
func New(options pkgopenapi.LoaderOptions) pkgopenapi.Loader {
	l := &Loader{
		fs:      options.FileSystem,
		timeout: options.RequestTimeout,
	}
	switch {
	case options.HTTPClient != nil:
		clone := *options.HTTPClient
		if l.timeout > 0 && clone.Timeout == 0 {
			clone.Timeout = l.timeout
		}
		l.client = &clone
	case options.AllowHTTPFallback:
		l.client = &http.Client{Timeout: l.timeout}
	}
	return l
}

// Load fetches the document behind src, checks that the payload plausibly is
// an OpenAPI document, and wraps it in a Document.
func (l *Loader) Load(ctx context.Context, src pkgopenapi.Source) (pkgopenapi.Document, error) {
	if src == nil {
		return pkgopenapi.Document{}, errors.New("openapi loader: source is nil")
	}
	if err := ctx.Err(); err != nil {
		return pkgopenapi.Document{}, err
	}

	var (
		data []byte
		err  error
	)
	switch src.Kind() {
	case pkgopenapi.SourceKindFile:
		data, err = l.readFile(src.Location())
	case pkgopenapi.SourceKindFS:
		data, err = l.readFS(src.Location())
	case pkgopenapi.SourceKindURL:
		data, err = l.fetch(ctx, src.Location())
	default:
		err = fmt.Errorf("openapi loader: unsupported source kind %q", src.Kind())
	}
	if err != nil {
		return pkgopenapi.Document{}, err
	}

	if err := checkPayload(src, data); err != nil {
		return pkgopenapi.Document{}, err
	}
	return pkgopenapi.NewDocument(src, data)
}

func (l *Loader) readFile(path string) ([]byte, error) {
	if path == "" {
		return nil, errors.New("openapi loader: file path is required")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("openapi loader: read %s: %w", path, err)
	}
	return data, nil
}

func (l *Loader) readFS(name string) ([]byte, error) {
	if l.fs == nil {
		return nil, errors.New("openapi loader: filesystem is not configured")
	}
	if name == "" {
		return nil, errors.New("openapi loader: fs path is required")
	}
	data, err := fs.ReadFile(l.fs, name)
	if err != nil {
		return nil, fmt.Errorf("openapi loader: read %s: %w", name, err)
	}
	return data, nil
}

func (l *Loader) fetch(ctx context.Context, url string) ([]byte, error) {
	if l.client == nil {
		return nil, errors.New("openapi loader: http support disabled")
	}

	if l.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, l.timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("openapi loader: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json, application/yaml, text/yaml")

	resp, err := l.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("openapi loader: fetch %s: %w", url, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("openapi loader: fetch %s: unexpected status %s", url, resp.Status)
	}
	if err := checkMediaType(resp.Header.Get("Content-Type")); err != nil {
		return nil, fmt.Errorf("openapi loader: fetch %s: %w", url, err)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxDocumentBytes+1))
	if err != nil {
		return nil, fmt.Errorf("openapi loader: fetch %s: %w", url, err)
	}
	if len(data) > maxDocumentBytes {
		return nil, fmt.Errorf("openapi loader: fetch %s: document exceeds %d bytes", url, maxDocumentBytes)
	}
	return data, nil
}

func checkMediaType(header string) error {
	if header == "" {
		return nil
	}
	mediaType, _, err := mime.ParseMediaType(header)
	if err != nil {
		return fmt.Errorf("parse content type: %w", err)
	}
	if !documentMediaTypes[mediaType] {
		return fmt.Errorf("unsupported content type %q", mediaType)
	}
	return nil
}

// checkPayload rejects payloads that cannot be OpenAPI documents: empty
// bodies, payloads without a version marker, and payloads whose shape
// contradicts the format the source's extension hints at.
func checkPayload(src pkgopenapi.Source, data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return fmt.Errorf("openapi loader: %s: document is empty", src.Location())
	}
	if src.Format() == pkgopenapi.DocumentFormatJSON && trimmed[0] != '{' && trimmed[0] != '[' {
		return fmt.Errorf("openapi loader: %s: extension says JSON but payload is not", src.Location())
	}
	for _, marker := range []string{`"openapi"`, "openapi:", `"swagger"`, "swagger:"} {
		if bytes.Contains(data, []byte(marker)) {
			return nil
		}
	}
	return fmt.Errorf("openapi loader: %s: payload does not declare an openapi or swagger version", src.Location())
}

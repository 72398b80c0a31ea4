package catalog

import (
	"bufio"
	"bytes"
	"compress/gzip"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/Lixing-Zhang/kart-challenge/counter-pos/internal/models"
)

var (
	ErrEmptyCatalog   = errors.New("catalog has no products")
	ErrInvalidProduct = errors.New("invalid catalog product")
)

// gzip magic bytes
var gzipMagic = []byte{0x1f, 0x8b}

// Loader reads a catalog from a local file or an http(s) URL.
// Sources hold a JSON array of products, optionally gzip-compressed.
type Loader struct {
	client *http.Client
}

// NewLoader creates a loader with a bounded HTTP timeout
func NewLoader() *Loader {
	return &Loader{
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Load reads and validates a catalog from source
func (l *Loader) Load(ctx context.Context, source string) ([]models.Product, error) {
	var (
		r   io.ReadCloser
		err error
	)

	if isURL(source) {
		r, err = l.open(ctx, source)
	} else {
		r, err = os.Open(source)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog %s: %w", source, err)
	}
	defer r.Close()

	products, err := decode(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog %s: %w", source, err)
	}

	if err := Validate(products); err != nil {
		return nil, fmt.Errorf("catalog %s: %w", source, err)
	}

	return products, nil
}

// open downloads a catalog from a URL
func (l *Loader) open(ctx context.Context, url string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := l.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to download catalog: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	return resp.Body, nil
}

// decode parses the JSON product list, unwrapping gzip when the stream starts with its magic bytes
func decode(r io.Reader) ([]models.Product, error) {
	br := bufio.NewReader(r)

	head, err := br.Peek(len(gzipMagic))
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}

	var src io.Reader = br
	if bytes.Equal(head, gzipMagic) {
		gzReader, err := gzip.NewReader(br)
		if err != nil {
			return nil, fmt.Errorf("failed to create gzip reader: %w", err)
		}
		defer gzReader.Close()
		src = gzReader
	}

	var products []models.Product
	if err := json.NewDecoder(src).Decode(&products); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyCatalog
		}
		return nil, fmt.Errorf("invalid catalog json: %w", err)
	}

	return products, nil
}

// Validate checks a product list before it replaces the built-in catalog
func Validate(products []models.Product) error {
	if len(products) == 0 {
		return ErrEmptyCatalog
	}

	ids := make(map[string]bool, len(products))
	for i, p := range products {
		switch {
		case strings.TrimSpace(p.ID) == "":
			return fmt.Errorf("product %d: missing id: %w", i+1, ErrInvalidProduct)
		case ids[p.ID]:
			return fmt.Errorf("product %d: duplicate id %q: %w", i+1, p.ID, ErrInvalidProduct)
		case strings.TrimSpace(p.Name) == "":
			return fmt.Errorf("product %q: missing name: %w", p.ID, ErrInvalidProduct)
		case strings.TrimSpace(p.Category) == "":
			return fmt.Errorf("product %q: missing category: %w", p.ID, ErrInvalidProduct)
		case strings.EqualFold(p.Category, AllCategories):
			return fmt.Errorf("product %q: category %q is reserved: %w", p.ID, p.Category, ErrInvalidProduct)
		case p.Price.IsNegative():
			return fmt.Errorf("product %q: negative price %s: %w", p.ID, p.Price, ErrInvalidProduct)
		}
		ids[p.ID] = true
	}

	return nil
}

func isURL(source string) bool {
	return strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://")
}

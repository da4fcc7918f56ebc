// Package imagecdn resolves opaque image references to CDN URLs.
//
// References follow the content backend's asset naming:
//
//	image-<assetId>-<width>x<height>-<format>
//
// which resolves to <base>/images/<project>/<dataset>/<assetId>-<width>x<height>.<format>.
package imagecdn

import (
	"errors"
	"fmt"
	"strings"
)

var ErrBadRef = errors.New("malformed image reference")

type Resolver struct {
	baseURL   string
	projectID string
	dataset   string
}

func NewResolver(baseURL, projectID, dataset string) *Resolver {
	if baseURL == "" {
		baseURL = "https://cdn.sanity.io"
	}
	return &Resolver{
		baseURL:   strings.TrimRight(baseURL, "/"),
		projectID: projectID,
		dataset:   dataset,
	}
}

func (r *Resolver) Resolve(ref string) (string, error) {
	rest, ok := strings.CutPrefix(ref, "image-")
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrBadRef, ref)
	}

	// Asset ids may themselves contain dashes; the dimensions and format are
	// always the last two segments.
	i := strings.LastIndex(rest, "-")
	if i <= 0 {
		return "", fmt.Errorf("%w: %q", ErrBadRef, ref)
	}
	format := rest[i+1:]
	rest = rest[:i]

	j := strings.LastIndex(rest, "-")
	if j <= 0 {
		return "", fmt.Errorf("%w: %q", ErrBadRef, ref)
	}
	dims := rest[j+1:]
	assetID := rest[:j]

	if format == "" || !strings.Contains(dims, "x") {
		return "", fmt.Errorf("%w: %q", ErrBadRef, ref)
	}

	return fmt.Sprintf("%s/images/%s/%s/%s-%s.%s",
		r.baseURL, r.projectID, r.dataset, assetID, dims, format), nil
}

package media

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/modacart/modacart-backend/pkg/config"
	pkgerrors "github.com/modacart/modacart-backend/pkg/errors"
)

// PublicPathPrefix is the static route uploaded images are served under.
const PublicPathPrefix = "/images"

// UploadResult describes a stored image.
type UploadResult struct {
	Filename string
	URL      string
}

// Service persists uploaded images to the configured directory and hands
// back the URL they will be served from.
type Service interface {
	Save(ctx context.Context, fieldName, originalName string, src io.Reader) (*UploadResult, error)
}

type service struct {
	dir     string
	baseURL string
	now     func() time.Time
}

// ServiceParams bundles the dependencies required to build a media service.
type ServiceParams struct {
	Config config.MediaConfig
	Now    func() time.Time
}

// NewService ensures the storage directory exists and returns the service.
func NewService(params ServiceParams) (Service, error) {
	if params.Config.Dir == "" {
		return nil, fmt.Errorf("media dir is required")
	}
	if params.Config.PublicBaseURL == "" {
		return nil, fmt.Errorf("media public base URL is required")
	}
	if err := os.MkdirAll(params.Config.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating media dir: %w", err)
	}
	now := params.Now
	if now == nil {
		now = time.Now
	}
	return &service{
		dir:     params.Config.Dir,
		baseURL: strings.TrimRight(params.Config.PublicBaseURL, "/"),
		now:     now,
	}, nil
}

// Save streams the upload to disk under `<field>_<unix-ms><ext>`. The
// extension is taken from the client's filename as-is; content is not
// inspected.
func (s *service) Save(ctx context.Context, fieldName, originalName string, src io.Reader) (*UploadResult, error) {
	if fieldName == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "file field name is required")
	}

	filename := fmt.Sprintf("%s_%d%s", fieldName, s.now().UnixMilli(), filepath.Ext(originalName))
	dest := filepath.Join(s.dir, filename)

	out, err := os.Create(dest)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create image file")
	}
	defer out.Close()

	if _, err := io.Copy(out, src); err != nil {
		os.Remove(dest)
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "write image file")
	}

	return &UploadResult{
		Filename: filename,
		URL:      fmt.Sprintf("%s%s/%s", s.baseURL, PublicPathPrefix, filename),
	}, nil
}

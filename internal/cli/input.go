package cli

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/matzehuels/geosvg/pkg/cache"
	errs "github.com/matzehuels/geosvg/pkg/errors"
	"github.com/matzehuels/geosvg/pkg/fetch"
	gio "github.com/matzehuels/geosvg/pkg/io"
	"github.com/matzehuels/geosvg/pkg/pipeline"
)

// fetchTTL is how long a downloaded input stays in the cache.
const fetchTTL = time.Hour

// source is geometry text read from a file, a URL or stdin.
type source struct {
	name   string
	data   []byte
	format gio.Format
}

// readSource loads the input named by args: a path, an http(s) URL, or
// stdin when args is empty or "-". The format comes from the extension;
// the pipeline sniffs content when it is unknown.
func readSource(ctx context.Context, args []string, stdin io.Reader, c cache.Cache, refresh bool) (*source, error) {
	arg := "-"
	if len(args) > 0 {
		arg = args[0]
	}

	switch {
	case arg == "-":
		data, err := io.ReadAll(io.LimitReader(stdin, pipeline.MaxInputSize+1))
		if err != nil {
			return nil, errs.Wrap(errs.ErrCodeInvalidInput, err, "read stdin")
		}
		return &source{name: "stdin", data: data}, nil

	case fetch.IsURL(arg):
		data, err := fetch.NewClient(c, fetchTTL, nil).Fetch(ctx, arg, refresh)
		if err != nil {
			return nil, err
		}
		name := fetch.Name(arg)
		return &source{name: name, data: data, format: gio.FormatFromPath(name)}, nil

	default:
		data, err := os.ReadFile(arg)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				return nil, errs.Wrap(errs.ErrCodeFileNotFound, err, "open %s", arg)
			}
			return nil, errs.Wrap(errs.ErrCodeInvalidInput, err, "read %s", arg)
		}
		return &source{name: filepath.Base(arg), data: data, format: gio.FormatFromPath(arg)}, nil
	}
}

package generate

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/valyala/fasttemplate"
)

// bannerFormat is matched by downstream tooling; keep it
// byte-for-byte stable.
const bannerFormat = `// Code generated from " {{argv}} ". DO NOT EDIT.`

// GeneratedMarker is the stable phrase identifying
// generated output.
const GeneratedMarker = "DO NOT EDIT."

// Config holds the options of a single run.
type Config struct {
	Package  string
	Prefix   string
	Output   string
	Defines  []string
	Template string
}

// Generator expands a template according to its Config.
type Generator struct {
	Config
}

// DefaultConfig returns a Config for template with the
// default prefix and package name. An explicitly empty
// prefix or package is a valid setting, so defaults are
// only applied here.
func DefaultConfig(template string) Config {
	return Config{
		Package:  DefaultPackage,
		Prefix:   DefaultPrefix,
		Template: template,
	}
}

// Banner renders the generated-file header for argv,
// without a trailing newline.
func Banner(argv []string) string {
	return fasttemplate.ExecuteString(
		bannerFormat, "{{", "}}",
		map[string]interface{}{
			"argv": strings.Join(argv, " "),
		},
	)
}

// Transform copies r to w line by line, applying pairs to
// each line. Line terminators are preserved as read,
// including a missing newline on the last line.
func Transform(r io.Reader, w io.Writer, pairs []Pair) error {
	const errCtx = "transforming"

	br := bufio.NewReader(r)
	bw := bufio.NewWriter(w)

	for {
		line, err := br.ReadString('\n')
		if line != "" {
			if _, werr := bw.WriteString(
				Apply(line, pairs),
			); werr != nil {
				return fmt.Errorf(
					"%s: writing: %w", errCtx, werr,
				)
			}
		}

		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			return fmt.Errorf(
				"%s: reading: %w", errCtx, err,
			)
		}
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("%s: writing: %w", errCtx, err)
	}

	return nil
}

// Generate writes the banner for argv followed by the
// transformed template. If Output is empty it writes to
// stdout, otherwise the file at Output is created or
// truncated.
//
// Defines are validated and the template is opened before
// the output is touched, so a malformed define or a
// missing template leaves no output file behind.
func (ge *Generator) Generate(
	argv []string,
	stdout io.Writer,
) (err error) {
	const errCtx = "generating"

	pairs, err := BuildPairs(
		ge.Prefix, ge.Package, ge.Defines,
	)
	if err != nil {
		return fmt.Errorf("%s: %w", errCtx, err)
	}

	tpl, err := os.Open(ge.Template) //nolint:gosec // path from CLI args
	if err != nil {
		return fmt.Errorf(
			"%s: opening template: %w", errCtx, err,
		)
	}

	defer tpl.Close() //nolint:errcheck // read-only file

	out, closer, err := ge.openOutput(stdout)
	if err != nil {
		return fmt.Errorf("%s: %w", errCtx, err)
	}

	if closer != nil {
		defer func() {
			if cerr := closer(); cerr != nil && err == nil {
				err = fmt.Errorf(
					"%s: closing output: %w", errCtx, cerr,
				)
			}
		}()
	}

	_, err = io.WriteString(out, Banner(argv)+"\n")
	if err != nil {
		return fmt.Errorf(
			"%s: writing banner: %w", errCtx, err,
		)
	}

	err = Transform(tpl, out, pairs)
	if err != nil {
		return fmt.Errorf("%s: %w", errCtx, err)
	}

	return nil
}

// openOutput returns stdout when Output is empty, otherwise
// the created file together with its closer.
func (ge *Generator) openOutput(
	stdout io.Writer,
) (io.Writer, func() error, error) {
	const errCtx = "opening output"

	if ge.Output == "" {
		return stdout, nil, nil
	}

	fi, err := os.OpenFile( //nolint:gosec // path from CLI flags
		ge.Output,
		os.O_WRONLY|os.O_CREATE|os.O_TRUNC,
		0o666,
	)
	if err != nil {
		return nil, nil, fmt.Errorf(
			"%s: %w", errCtx, err,
		)
	}

	return fi, fi.Close, nil
}

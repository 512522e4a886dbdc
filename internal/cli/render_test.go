package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/matzehuels/atomgrid/pkg/errors"
	"github.com/matzehuels/atomgrid/pkg/layout"
)

func TestOutputPath(t *testing.T) {
	tests := []struct {
		name  string
		input string
		opts  renderOpts
		want  string
	}{
		{name: "explicit output", input: "layout.json", opts: renderOpts{output: "plot.png"}, want: "plot.png"},
		{name: "derived svg", input: "layout.json", opts: renderOpts{format: "svg"}, want: "layout.svg"},
		{name: "derived pdf", input: "dir/hex.json", opts: renderOpts{format: "pdf"}, want: "dir/hex.pdf"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := outputPath(tt.input, &tt.opts); got != tt.want {
				t.Errorf("outputPath() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRunRender(t *testing.T) {
	dir := t.TempDir()
	layoutPath := filepath.Join(dir, "layout.json")
	doc := layout.NewDocument(layout.NewSquareLattice(4, 4, 5))
	if err := layout.WriteDocumentFile(doc, layoutPath); err != nil {
		t.Fatal(err)
	}

	opts := renderOpts{format: "svg", width: 10, height: 10}
	if err := runRender(quietContext(t), layoutPath, &opts); err != nil {
		t.Fatalf("runRender() error = %v", err)
	}

	info, err := os.Stat(filepath.Join(dir, "layout.svg"))
	if err != nil {
		t.Fatalf("output missing: %v", err)
	}
	if info.Size() == 0 {
		t.Error("rendered file is empty")
	}
}

func TestRunRenderWithRegister(t *testing.T) {
	dir := t.TempDir()
	l := layout.NewSquareLattice(4, 4, 5)
	layoutPath := filepath.Join(dir, "layout.json")
	if err := layout.WriteDocumentFile(layout.NewDocument(l), layoutPath); err != nil {
		t.Fatal(err)
	}

	registerPath := filepath.Join(dir, "register.json")
	carve := carveOpts{square: 2, prefix: "q", output: registerPath}
	if err := runCarve(quietContext(t), layoutPath, &carve); err != nil {
		t.Fatal(err)
	}

	opts := renderOpts{
		output:   filepath.Join(dir, "plot.png"),
		register: registerPath,
		labels:   true,
		width:    10,
		height:   10,
	}
	if err := runRender(quietContext(t), layoutPath, &opts); err != nil {
		t.Fatalf("runRender() error = %v", err)
	}
	if _, err := os.Stat(opts.output); err != nil {
		t.Fatalf("output missing: %v", err)
	}
}

func TestReadRegisterFileMissing(t *testing.T) {
	_, err := readRegisterFile(filepath.Join(t.TempDir(), "nope.json"))
	if err == nil {
		t.Fatal("readRegisterFile() should fail for a missing file")
	}
	if errors.GetCode(err) != errors.ErrCodeFileNotFound {
		t.Errorf("code = %q, want %q", errors.GetCode(err), errors.ErrCodeFileNotFound)
	}
}

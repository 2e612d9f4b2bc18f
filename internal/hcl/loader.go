package hcl

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/vk/langtour/internal/config"
	"github.com/vk/langtour/internal/ctxlog"
	"github.com/vk/langtour/internal/fsutil"
	"github.com/vk/langtour/internal/schema"
)

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct {
	evalCtx *hcl.EvalContext
}

// NewLoader creates a new HCL plan loader.
func NewLoader() *Loader {
	return &Loader{evalCtx: newEvalContext()}
}

// Load parses every .hcl file reachable from paths and merges them into one
// plan. Paths that do not exist are ignored.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL plan loader started.", "path_count", len(paths))

	files, err := fsutil.ExpandPaths(".hcl", paths...)
	if err != nil {
		return nil, fmt.Errorf("failed to discover plan files: %w", err)
	}
	logger.Debug("Discovered plan files.", "files", files)

	model := &config.Model{}
	parser := hclparse.NewParser()

	for _, file := range files {
		hclFile, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse plan file %s: %w", file, diags)
		}
		if err := l.decodeFile(ctx, hclFile, file, model); err != nil {
			return nil, err
		}
	}

	logger.Debug("HCL plan loading complete.", "files", len(files), "selections", len(model.Selections))
	return model, nil
}

// decodeFile decodes one parsed file and appends its selections to model in
// source order, topic and lesson blocks interleaved as written.
func (l *Loader) decodeFile(ctx context.Context, f *hcl.File, filename string, model *config.Model) error {
	var root schema.PlanFile
	if diags := gohcl.DecodeBody(f.Body, nil, &root); diags.HasErrors() {
		return fmt.Errorf("failed to decode plan file %s: %w", filename, diags)
	}

	if root.Tour != nil && model.Title == "" {
		model.Title = root.Tour.Title
	}

	body, ok := f.Body.(*hclsyntax.Body)
	if !ok {
		return fmt.Errorf("plan file %s is not native HCL syntax", filename)
	}

	var topicIdx, lessonIdx int
	for _, block := range body.Blocks {
		source := fmt.Sprintf("%s:%d", filename, block.DefRange().Start.Line)
		switch block.Type {
		case "topic":
			model.Selections = append(model.Selections, translateTopic(root.Topics[topicIdx], source))
			topicIdx++
		case "lesson":
			sel, err := l.translateLesson(ctx, root.Lessons[lessonIdx], source)
			if err != nil {
				return err
			}
			model.Selections = append(model.Selections, sel)
			lessonIdx++
		}
	}
	return nil
}

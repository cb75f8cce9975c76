// Package session implements the subcommand actions: it owns the lifecycle of
// a document within one program run (open storage, load or create, act,
// save).
package session

import (
	"context"
	"errors"
	"fmt"
	"os"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"folio/common"
	"folio/document"
	"folio/export"
	"folio/render"
	"folio/state"
	"folio/store"
)

func storagePath(env *state.LocalEnv, cmd *cli.Command) string {
	if path := cmd.String("db"); len(path) != 0 {
		return path
	}
	return env.Cfg.Storage.Path
}

// Init creates a new document database: one empty page, the built-in header
// and footer templates installed as document defaults. An existing document
// is only replaced with --overwrite.
func Init(ctx context.Context, cmd *cli.Command) (err error) {
	env := state.EnvFromContext(ctx)
	path := storagePath(env, cmd)

	s, err := store.Open(path, env.Log)
	if err != nil {
		return err
	}
	defer func() {
		if er := s.Close(); er != nil {
			err = multierr.Append(err, fmt.Errorf("unable to close storage: %w", er))
		}
	}()

	if _, er := s.Load(env.Cfg, env.Log); er == nil {
		if !cmd.Bool("overwrite") {
			return fmt.Errorf("document already exists in %s, use --overwrite to replace it", path)
		}
		env.Log.Warn("Replacing existing document", zap.String("path", path))
	} else if !errors.Is(er, store.ErrNoDocument) {
		return fmt.Errorf("unable to read existing document: %w", er)
	}

	d := document.New(env.Cfg, env.Log)
	if title := cmd.String("title"); len(title) != 0 {
		d.Title = title
	}
	if author := cmd.String("author"); len(author) != 0 {
		d.Author = author
	}
	seedBuiltinChrome(d)

	if err := s.Save(d); err != nil {
		return fmt.Errorf("unable to save new document: %w", err)
	}
	env.Log.Info("Created document", zap.String("path", path), zap.String("title", d.Title))
	return nil
}

// seedBuiltinChrome installs the canonical built-in templates as the document
// defaults, so every page starts out with sensible chrome.
func seedBuiltinChrome(d *document.Document) {
	for _, slot := range []common.Slot{common.SlotHeader, common.SlotFooter} {
		body := d.BuiltinBody(slot)
		opts := document.ContentOptions{
			Segments:        &body.Segments,
			Height:          &body.Height,
			ShowOnFirstPage: &body.ShowOnFirstPage,
		}
		if slot == common.SlotHeader {
			d.SetDefaultHeader(d.CreateHeader(opts))
		} else {
			d.SetDefaultFooter(d.CreateFooter(opts))
		}
	}
}

func loadDocument(env *state.LocalEnv, cmd *cli.Command) (*store.Store, *document.Document, error) {
	path := storagePath(env, cmd)

	s, err := store.Open(path, env.Log)
	if err != nil {
		return nil, nil, err
	}
	d, err := s.Load(env.Cfg, env.Log)
	if err != nil {
		s.Close()
		if errors.Is(err, store.ErrNoDocument) {
			return nil, nil, fmt.Errorf("no document in %s, run init first", path)
		}
		return nil, nil, fmt.Errorf("unable to load document: %w", err)
	}
	return s, d, nil
}

// Inspect prints the document structure with resolved header/footer states
// for every page.
func Inspect(ctx context.Context, cmd *cli.Command) (err error) {
	env := state.EnvFromContext(ctx)

	s, d, err := loadDocument(env, cmd)
	if err != nil {
		return err
	}
	defer func() {
		if er := s.Close(); er != nil {
			err = multierr.Append(err, fmt.Errorf("unable to close storage: %w", er))
		}
	}()

	_, err = fmt.Fprint(os.Stdout, d.String())
	return err
}

// Export writes the stamped XML snapshot of the document to DESTINATION (the
// current directory when absent).
func Export(ctx context.Context, cmd *cli.Command) (err error) {
	env := state.EnvFromContext(ctx)

	if cmd.Args().Len() > 1 {
		env.Log.Warn("Malformed command line, too many destinations", zap.Strings("ignoring", cmd.Args().Slice()[1:]))
	}
	dir := cmd.Args().Get(0)
	if len(dir) == 0 {
		dir = "."
	}

	s, d, err := loadDocument(env, cmd)
	if err != nil {
		return err
	}
	defer func() {
		if er := s.Close(); er != nil {
			err = multierr.Append(err, fmt.Errorf("unable to close storage: %w", er))
		}
	}()

	path, err := export.WriteFile(d, render.NewContext(env.Cfg), dir, cmd.Bool("overwrite"))
	if err != nil {
		return err
	}
	env.Log.Info("Exported document", zap.String("file", path), zap.Int("pages", d.FolioCount()))
	return nil
}

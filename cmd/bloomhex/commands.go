package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/datatrails/go-datatrails-common/logger"
	"github.com/forestrie/go-bloomhex/bloom"
	"github.com/forestrie/go-bloomhex/bloomstore"
)

type app struct {
	cfg Config
	log logger.Logger
	in  io.Reader
	out io.Writer
}

func (a *app) dispatch(ctx context.Context) error {
	switch a.cfg.Command {
	case cmdBuild:
		return a.build(ctx)
	case cmdQuery:
		return a.query(ctx)
	case cmdInspect:
		return a.inspect(ctx)
	}
	return fmt.Errorf("%w: %q", ErrUnknownCommand, a.cfg.Command)
}

func (a *app) store() (*bloomstore.Store, error) {
	return bloomstore.NewStore(bloomstore.Config{
		Overwrite: a.cfg.Overwrite,
		HashName:  a.cfg.HashName,
	}, a.log, bloomstore.NewDirStore(a.cfg.StoreDir))
}

func (a *app) build(ctx context.Context) error {
	elements, err := a.readElements()
	if err != nil {
		return err
	}
	if a.cfg.StoreDir == "" {
		hash, err := bloom.HashByName(a.cfg.HashName)
		if err != nil {
			return err
		}
		f, err := bloom.FromElements(elements, bloom.WithProbability(a.cfg.Probability), bloom.WithHash(hash))
		if err != nil {
			return err
		}
		a.logBuilt(f)
		_, err = fmt.Fprintln(a.out, f.String())
		return err
	}

	s, err := a.store()
	if err != nil {
		return err
	}
	f, err := s.Build(elements, bloom.WithProbability(a.cfg.Probability))
	if err != nil {
		return err
	}
	a.logBuilt(f)
	if err := s.Save(ctx, a.cfg.Name, f); err != nil {
		return err
	}
	a.log.Infof("build: saved %s", s.BlobPath(a.cfg.Name))
	return nil
}

func (a *app) logBuilt(f *bloom.Filter) {
	a.log.Infof("build: n=%d p=%g m=%d k=%d", f.ExpectedElementCount(), a.cfg.Probability, f.BitLength(), f.HashRounds())
}

func (a *app) query(ctx context.Context) error {
	f, err := a.loadFilter(ctx)
	if err != nil {
		return err
	}
	for _, v := range a.cfg.Values {
		if _, err := fmt.Fprintf(a.out, "%s\t%t\n", v, f.Has(v)); err != nil {
			return err
		}
	}
	return nil
}

func (a *app) inspect(ctx context.Context) error {
	f, err := a.loadFilter(ctx)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(a.out, "bitLength\t%d\nhashRounds\t%d\nexpectedElementCount\t%d\nfalsePositiveProbability\t%g\n",
		f.BitLength(), f.HashRounds(), f.ExpectedElementCount(), f.FalsePositiveProbability())
	return err
}

func (a *app) loadFilter(ctx context.Context) (*bloom.Filter, error) {
	if a.cfg.StoreDir != "" {
		s, err := a.store()
		if err != nil {
			return nil, err
		}
		return s.Load(ctx, a.cfg.Name)
	}

	b, err := os.ReadFile(a.cfg.FilterFile)
	if err != nil {
		return nil, err
	}
	hash, err := bloom.HashByName(a.cfg.HashName)
	if err != nil {
		return nil, err
	}
	a.log.Infof("loadFilter: %s (%d bytes)", a.cfg.FilterFile, len(b))
	return bloom.FromEncoding(strings.TrimSpace(string(b)), bloom.WithHash(hash))
}

// readElements returns the non-empty lines of the element input.
func (a *app) readElements() ([]string, error) {
	r := a.in
	if a.cfg.In != "" && a.cfg.In != "-" {
		f, err := os.Open(a.cfg.In)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}

	var elements []string
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 1024*1024)
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), "\r")
		if line == "" {
			continue
		}
		elements = append(elements, line)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return elements, nil
}

// Copyright 2017 Robert Iannucci Jr. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

// Command s3pconv converts between S3P archives and directories of extracted
// ASF assets.
//
//	s3pconv voices.s3p -o out/        # writes out/voices/{0.asf,...,metadata.json}
//	s3pconv out/voices -o new.s3p     # writes new.s3p
//	s3pconv out/voices -o dist/       # writes dist/voices.s3p
//	s3pconv --list voices.s3p         # prints the entries of voices.s3p
package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/spf13/pflag"

	"go.chromium.org/luci/common/errors"
	"go.chromium.org/luci/common/logging"
	"go.chromium.org/luci/common/logging/gologger"

	"github.com/riannucci/s3pconv/s3p"
	"github.com/riannucci/s3pconv/s3p/meta"
	"github.com/riannucci/s3pconv/s3p/s3pdata"
)

type options struct {
	input  string
	output string

	verifyTerminator bool
	force            bool
	list             bool
	digest           s3pdata.DigestScheme
	verbose          bool
}

func parseArgs(args []string, stderr io.Writer) (*options, error) {
	fs := pflag.NewFlagSet("s3pconv", pflag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintln(stderr, "usage: s3pconv [flags] <S3P file | unpacked directory>")
		fmt.Fprintln(stderr)
		fmt.Fprintln(stderr, "Convert between ASF and S3P files.")
		fmt.Fprintln(stderr)
		fs.PrintDefaults()
	}

	cwd, err := os.Getwd()
	if err != nil {
		return nil, err
	}
	opts := &options{}
	var digest string
	fs.StringVarP(&opts.output, "output", "o", cwd,
		"directory (extract, package) or file (package) to output to")
	fs.BoolVar(&opts.verifyTerminator, "verify-terminator", false,
		"fail if the S3P's trailing length doesn't match its size")
	fs.BoolVarP(&opts.force, "force", "f", false,
		"extract into the output directory even if it isn't empty")
	fs.BoolVarP(&opts.list, "list", "l", false,
		"print the entries of an S3P instead of extracting it")
	fs.StringVar(&digest, "digest", s3pdata.DigestSHA2_256.String(),
		"asset digest for --list (sha256, sha512, blake2s, blake2b, sha3-256, sha3-512, null)")
	fs.BoolVarP(&opts.verbose, "verbose", "v", false, "log debugging information")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return nil, errors.Reason("expected exactly one input path, got %d", fs.NArg()).Err()
	}
	opts.input = fs.Arg(0)
	if opts.digest, err = s3pdata.ParseDigestScheme(digest); err != nil {
		return nil, errors.Annotate(err, "--digest").Err()
	}
	return opts, nil
}

func isDir(path string) bool {
	st, err := os.Stat(path)
	return err == nil && st.IsDir()
}

// stem returns the last element of path without its extension.
func stem(path string) string {
	base := filepath.Base(filepath.Clean(path))
	return strings.TrimSuffix(base, filepath.Ext(base))
}

func extract(ctx context.Context, opts *options, stdout io.Writer) error {
	data, err := os.ReadFile(opts.input)
	if err != nil {
		return err
	}
	if f, ok := s3pdata.Sniff(s3pdata.NewReader(data)); !ok || f != s3pdata.FormatS3P {
		return errors.Reason("%q is not an S3P file", opts.input).Err()
	}
	a, err := s3p.Open(bytes.NewReader(data), s3p.WithTerminatorCheck(opts.verifyTerminator))
	if err != nil {
		return errors.Annotate(err, "opening %q", opts.input).Err()
	}
	logging.Debugf(ctx, "%q: %d entries, %d bytes", opts.input, len(a.Entries), a.Size)

	if opts.list {
		return list(a, opts.digest, stdout)
	}

	if !isDir(opts.output) {
		return errors.Reason("output path %q must be a directory for extraction", opts.output).Err()
	}
	root := filepath.Join(opts.output, stem(opts.input))
	return a.UnpackTo(ctx, root, s3p.WithOverwrite(opts.force))
}

func pack(ctx context.Context, opts *options) (err error) {
	if !s3p.IsUnpacked(opts.input) {
		return errors.Reason("%q is not an unpacked S3P (no %s)", opts.input, meta.Filename).Err()
	}

	dest := opts.output
	if isDir(dest) {
		dest = filepath.Join(dest, stem(opts.input)+".s3p")
	}
	f, err := os.Create(dest)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			os.Remove(dest)
		}
	}()

	_, err = s3p.PackFrom(ctx, opts.input, f)
	return
}

func list(a *s3p.Archive, scheme s3pdata.DigestScheme, stdout io.Writer) error {
	sums, err := a.Summarize(scheme)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(stdout, 0, 8, 2, ' ', 0)
	fmt.Fprintf(tw, "NAME\tOFFSET\tLENGTH\tASSET\tOPAQUE\t%s\n", strings.ToUpper(scheme.String()))
	for _, s := range sums {
		fmt.Fprintf(tw, "%s\t0x%x\t%d\t%d\t%v\t%s\n",
			s.Name, s.Offset, s.Length, s.AssetLength, s.Opaque, s.Digest)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	if err := a.CheckTerminator(); err != nil {
		color.New(color.FgYellow).Fprintf(stdout, "stale terminator: %s\n", err)
	} else {
		color.New(color.FgGreen).Fprintf(stdout, "%d entries, %d bytes\n", len(a.Entries), a.Size)
	}
	return nil
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	opts, err := parseArgs(args, stderr)
	if err != nil {
		return err
	}
	if opts.verbose {
		ctx = logging.SetLevel(ctx, logging.Debug)
	}

	st, err := os.Stat(opts.input)
	if err != nil {
		return err
	}
	if st.IsDir() {
		if opts.list {
			return errors.New("--list needs an S3P file")
		}
		return pack(ctx, opts)
	}
	return extract(ctx, opts, stdout)
}

func main() {
	ctx := gologger.StdConfig.Use(context.Background())
	switch err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); {
	case err == pflag.ErrHelp:
	case err != nil:
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

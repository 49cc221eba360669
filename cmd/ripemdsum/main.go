// Command ripemdsum prints RIPEMD digests of files.
//
//	ripemdsum [-b bits] [-f hex|base32|multibase|multihash|cid] [-car out.car] [-v] [file ...]
//	ripemdsum -check in.car [-f format] [-v]
//
// With no files, standard input is hashed. With -car, every input is also
// written as a raw block to a CAR whose roots are the inputs' CIDs. With
// -check, a CAR is read back, every block is verified against its CID and
// the digest of each root is printed next to it.
package main

import (
	"bytes"
	"encoding/hex"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/ipfs/go-cid"
	cidlink "github.com/ipld/go-ipld-prime/linking/cid"
	"github.com/multiformats/go-base32"
	"github.com/multiformats/go-multibase"
	"github.com/multiformats/go-multihash"
	"github.com/storacha/go-ripemd/core/car"
	"github.com/storacha/go-ripemd/core/dag/blockstore"
	"github.com/storacha/go-ripemd/core/ipld"
	"github.com/storacha/go-ripemd/core/ipld/block"
	mhripemd "github.com/storacha/go-ripemd/core/ipld/hash/ripemd"
	"github.com/storacha/go-ripemd/core/iterable"
	"github.com/storacha/go-ripemd/core/result/failure"
	"github.com/storacha/go-ripemd/core/ripemd"
)

const chunkSize = 32 << 10

type config struct {
	bits      int
	format    string
	carPath   string
	checkPath string
	verbose   bool
	files     []string
}

func parseFlags(args []string, output io.Writer) (config, error) {
	var cfg config
	fs := flag.NewFlagSet("ripemdsum", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.IntVar(&cfg.bits, "b", 160, "digest length in bits: 128, 160, 256 or 320")
	fs.StringVar(&cfg.format, "f", "hex", "output format: hex, base32, multibase, multihash or cid")
	fs.StringVar(&cfg.carPath, "car", "", "also write the inputs as raw blocks to this CAR file")
	fs.StringVar(&cfg.checkPath, "check", "", "verify this CAR file and print the digests of its roots")
	fs.BoolVar(&cfg.verbose, "v", false, "log debug output")
	if err := fs.Parse(args); err != nil {
		return cfg, err
	}
	cfg.files = fs.Args()
	return cfg, nil
}

// formatter renders a digest computed with the given variant.
type formatter func(v ripemd.Variant, digest []byte) (string, error)

var formatters = map[string]formatter{
	"hex": func(_ ripemd.Variant, digest []byte) (string, error) {
		return hex.EncodeToString(digest), nil
	},
	"base32": func(_ ripemd.Variant, digest []byte) (string, error) {
		return strings.ToLower(strings.TrimRight(base32.StdEncoding.EncodeToString(digest), "=")), nil
	},
	"multibase": func(_ ripemd.Variant, digest []byte) (string, error) {
		return multibase.Encode(multibase.Base32, digest)
	},
	"multihash": func(v ripemd.Variant, digest []byte) (string, error) {
		mh, err := multihash.Encode(digest, mhripemd.CodeOf(v))
		if err != nil {
			return "", err
		}
		return multihash.Multihash(mh).B58String(), nil
	},
	"cid": func(v ripemd.Variant, digest []byte) (string, error) {
		c, err := digestCID(v, digest)
		if err != nil {
			return "", err
		}
		return c.String(), nil
	},
}

func digestCID(v ripemd.Variant, digest []byte) (cid.Cid, error) {
	mh, err := multihash.Encode(digest, mhripemd.CodeOf(v))
	if err != nil {
		return cid.Undef, err
	}
	return cid.NewCidV1(cid.Raw, mh), nil
}

// input is one named stream to hash.
type input struct {
	name string
	open func() (io.ReadCloser, error)
}

func inputs(files []string, stdin io.Reader) []input {
	if len(files) == 0 {
		return []input{{name: "-", open: func() (io.ReadCloser, error) {
			return io.NopCloser(stdin), nil
		}}}
	}
	var ins []input
	for _, f := range files {
		if f == "-" {
			ins = append(ins, input{name: f, open: func() (io.ReadCloser, error) {
				return io.NopCloser(stdin), nil
			}})
			continue
		}
		ins = append(ins, input{name: f, open: func() (io.ReadCloser, error) {
			return os.Open(f)
		}})
	}
	return ins
}

// hashInput reads in to the end in fixed size chunks. When keep is set the
// bytes read are returned alongside the digest.
func hashInput(v ripemd.Variant, in input, keep bool) ([]byte, []byte, error) {
	r, err := in.open()
	if err != nil {
		return nil, nil, err
	}
	defer r.Close()

	h := v.New()
	var data bytes.Buffer
	buf := make([]byte, chunkSize)
	for {
		n, err := r.Read(buf)
		if n > 0 {
			h.Write(buf[:n])
			if keep {
				data.Write(buf[:n])
			}
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, fmt.Errorf("reading %s: %w", in.name, err)
		}
	}
	return h.Finalize(), data.Bytes(), nil
}

func run(log *slog.Logger, cfg config, stdin io.Reader, stdout io.Writer) error {
	format, ok := formatters[cfg.format]
	if !ok {
		return fmt.Errorf("unknown output format: %q", cfg.format)
	}
	if cfg.checkPath != "" {
		if len(cfg.files) > 0 || cfg.carPath != "" {
			return fmt.Errorf("-check cannot be combined with input files or -car")
		}
		return check(log, cfg.checkPath, format, stdout)
	}
	v, err := ripemd.ParseVariant(cfg.bits)
	if err != nil {
		return err
	}

	var bs blockstore.BlockStore
	var roots []ipld.Link
	if cfg.carPath != "" {
		bs, err = blockstore.NewBlockStore()
		if err != nil {
			return err
		}
	}

	for _, in := range inputs(cfg.files, stdin) {
		digest, data, err := hashInput(v, in, bs != nil)
		if err != nil {
			return err
		}
		out, err := format(v, digest)
		if err != nil {
			return fmt.Errorf("formatting digest of %s: %w", in.name, err)
		}
		fmt.Fprintf(stdout, "%s  %s\n", out, in.name)
		log.Debug("Hashed input", "name", in.name, "variant", v, "bytes", len(data))

		if bs != nil {
			blk, err := block.Encode(data, v)
			if err != nil {
				return err
			}
			if err := bs.Put(blk); err != nil {
				return err
			}
			roots = append(roots, blk.Link())
		}
	}

	if bs != nil {
		if err := writeCAR(cfg.carPath, roots, bs); err != nil {
			return err
		}
		log.Debug("Wrote CAR", "path", cfg.carPath, "roots", len(roots), "blocks", bs.Len())
	}
	return nil
}

func writeCAR(path string, roots []ipld.Link, bs blockstore.BlockReader) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	r := car.Encode(roots, iterable.FromSeq2(bs.Iterator()))
	defer r.Close()
	_, err = io.Copy(f, r)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// check prints the digest of every root of the CAR at path. The variant of
// each root comes from its CID.
func check(log *slog.Logger, path string, format formatter, stdout io.Writer) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	roots, blocks, err := car.Decode(f)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	br, err := blockstore.NewBlockReader(blockstore.WithBlocksIterator(iterable.ToSeq2(blocks)))
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	log.Debug("Read CAR", "path", path, "roots", len(roots), "blocks", br.Len())

	for _, root := range roots {
		blk, ok, err := br.Get(root)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("root %s is not in %s", root, path)
		}
		cl, ok := root.(cidlink.Link)
		if !ok {
			return fmt.Errorf("unsupported root link type: %T", root)
		}
		v, err := mhripemd.VariantOf(cl.Cid.Prefix().MhType)
		if err != nil {
			return fmt.Errorf("root %s: %w", root, err)
		}
		out, err := format(v, v.Sum(blk.Bytes()))
		if err != nil {
			return fmt.Errorf("formatting digest of %s: %w", root, err)
		}
		fmt.Fprintf(stdout, "%s  %s\n", out, root)
	}
	return nil
}

func logError(log *slog.Logger, err error) {
	f := failure.FromError(err)
	attrs := []any{"error", f.Message}
	if f.Name != nil {
		attrs = append(attrs, "name", *f.Name)
	}
	if f.Stack != nil {
		attrs = append(attrs, "stack", *f.Stack)
	}
	log.Error("ripemdsum failed", attrs...)
}

func main() {
	cfg, err := parseFlags(os.Args[1:], os.Stderr)
	if err != nil {
		if err == flag.ErrHelp {
			return
		}
		os.Exit(2)
	}

	level := slog.LevelInfo
	if cfg.verbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	if err := run(log, cfg, os.Stdin, os.Stdout); err != nil {
		logError(log, err)
		os.Exit(1)
	}
}

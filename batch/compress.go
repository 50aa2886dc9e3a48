/*
 * compress.go, part of gobalance.
 *
 *
 * Copyright 2024 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 *
 */

package batch

import (
	"bufio"
	"compress/lzw"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"go.uber.org/zap"
)

const (
	lzwOrder        = lzw.MSB
	lzwLitwidth int = 8
)

//Format returns the compression format of a file, deduced from its extension:
//"gz", "zst", "lzw", or "plain" for anything else.
func Format(name string) string {
	temp := strings.Split(name, ".")
	switch fk := strings.ToLower(temp[len(temp)-1]); fk {
	case "gz", "zst", "lzw":
		return fk
	case "zstd":
		return "zst"
	}
	return "plain"
}

//readCloser closes the decompressor, if any, and then the file.
type readCloser struct {
	io.Reader
	closers []func() error
}

func (r *readCloser) Close() error {
	var err error
	for _, c := range r.closers {
		if e := c(); e != nil && err == nil {
			err = e
		}
	}
	return err
}

//Open opens the file name for reading, decompressing it on the fly
//if its extension is .gz (gzip), .zst (zstd) or .lzw. Any other
//extension is read as plain text.
func Open(name string) (io.ReadCloser, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, Error{err.Error(), name, []string{"os.Open", "Open"}}
	}
	reader := bufio.NewReader(f)
	ret := &readCloser{closers: []func() error{f.Close}}
	switch Format(name) {
	case "gz":
		gz, err := gzip.NewReader(reader)
		if err != nil {
			f.Close()
			return nil, Error{err.Error(), name, []string{"gzip.NewReader", "Open"}}
		}
		ret.Reader = gz
		ret.closers = append([]func() error{gz.Close}, ret.closers...)
	case "zst":
		zs, err := zstd.NewReader(reader)
		if err != nil {
			f.Close()
			return nil, Error{err.Error(), name, []string{"zstd.NewReader", "Open"}}
		}
		ret.Reader = zs
		//why couldn't *zstd.Decoder implement io.ReadCloser? :-(
		ret.closers = append([]func() error{func() error { zs.Close(); return nil }}, ret.closers...)
	case "lzw":
		lz := lzw.NewReader(reader, lzwOrder, lzwLitwidth)
		ret.Reader = lz
		ret.closers = append([]func() error{lz.Close}, ret.closers...)
	default:
		ret.Reader = reader
	}
	return ret, nil
}

//writeCloser flushes and closes the compressor, if any, and then the file.
type writeCloser struct {
	io.Writer
	closers []func() error
}

func (w *writeCloser) Close() error {
	var err error
	for _, c := range w.closers {
		if e := c(); e != nil && err == nil {
			err = e
		}
	}
	return err
}

//Create creates the file name, compressing what is written to it according to the extension
//(see Open). level is the gzip compression level (-2 to 9) and is ignored for other formats.
//An invalid level is logged, and the default level is used instead.
func Create(name string, level int, logger *zap.Logger) (io.WriteCloser, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	f, err := os.Create(name)
	if err != nil {
		return nil, Error{err.Error(), name, []string{"os.Create", "Create"}}
	}
	ret := &writeCloser{closers: []func() error{f.Close}}
	switch Format(name) {
	case "gz":
		if level < gzip.HuffmanOnly || level > gzip.BestCompression {
			logger.Warn("invalid gzip compression level, using the default", zap.Int("level", level), zap.String("file", name))
			level = gzip.DefaultCompression
		}
		gz, err := gzip.NewWriterLevel(f, level)
		if err != nil {
			f.Close()
			return nil, Error{err.Error(), name, []string{"gzip.NewWriterLevel", "Create"}}
		}
		ret.Writer = gz
		ret.closers = append([]func() error{gz.Close}, ret.closers...)
	case "zst":
		zs, err := zstd.NewWriter(f, zstd.WithEncoderLevel(zstd.SpeedBestCompression))
		if err != nil {
			f.Close()
			return nil, Error{err.Error(), name, []string{"zstd.NewWriter", "Create"}}
		}
		ret.Writer = zs
		ret.closers = append([]func() error{zs.Close}, ret.closers...)
	case "lzw":
		lz := lzw.NewWriter(f, lzwOrder, lzwLitwidth)
		ret.Writer = lz
		ret.closers = append([]func() error{lz.Close}, ret.closers...)
	default:
		ret.Writer = f
	}
	return ret, nil
}

//Error is the general structure for batch file errors.
type Error struct {
	message  string
	filename string //the file that has problems, or empty string if none.
	deco     []string
}

func (err Error) Error() string {
	return fmt.Sprintf("batch file %s error: %s", err.filename, err.message)
}

//Decorate Adds new information to the error
func (E Error) Decorate(deco string) []string {
	if deco != "" {
		E.deco = append(E.deco, deco)
	}
	return E.deco
}

//FileName returns the file to which the failing batch was associated
func (err Error) FileName() string { return err.filename }

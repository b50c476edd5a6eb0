// Command textcompress reads a text file and writes its run-length and
// Huffman encodings next to it, as rle_compressed.txt and
// huffman_compressed.txt.
package main

import (
	"flag"
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"

	"github.com/op/go-logging"

	"github.com/chronos-tachyon/textcompress"
	"github.com/chronos-tachyon/textcompress/bitpack"
)

const (
	rleFileName      = "rle_compressed.txt"
	huffmanFileName  = "huffman_compressed.txt"
	huffmanBinName   = "huffman_compressed.bin"
	defaultLogFormat = `%{time:15:04:05.000} %{module} ▶ %{level:.4s} %{message}`
	encoderBoth      = "both"
	encoderHuffman   = "huffman"
	encoderRunLength = "rle"
)

var log = logging.MustGetLogger("textcompress/cmd")

var (
	f        = flag.String("f", "", "input file (default stdin)")
	o        = flag.String("o", "", "output directory (default: directory of the input file)")
	e        = flag.String("e", encoderBoth, "encoders: both / huffman / rle")
	packed   = flag.Bool("packed", false, "also write the Huffman output packed 8 bits per byte")
	dump     = flag.Bool("dump", false, "log the Huffman code table")
	logLevel = flag.String("log-level", "INFO", "log level: DEBUG / INFO / WARNING / ERROR")
)

type config struct {
	input      string
	outDir     string
	runHuffman bool
	runRLE     bool
	packed     bool
	dump       bool
}

func main() {
	flag.Parse()

	if err := initLogging(*logLevel); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	cfg, err := loadConfig()
	if err != nil {
		log.Errorf("%v", err)
		os.Exit(2)
	}

	if err := run(cfg); err != nil {
		log.Errorf("%v", err)
		os.Exit(1)
	}
}

func initLogging(level string) error {
	lvl, err := logging.LogLevel(level)
	if err != nil {
		return fmt.Errorf("-log-level: %w", err)
	}
	backend := logging.NewLogBackend(os.Stderr, "", 0)
	formatted := logging.NewBackendFormatter(backend, logging.MustStringFormatter(defaultLogFormat))
	leveled := logging.AddModuleLevel(formatted)
	leveled.SetLevel(lvl, "")
	logging.SetBackend(leveled)
	return nil
}

func loadConfig() (config, error) {
	cfg := config{
		input:  *f,
		outDir: *o,
		packed: *packed,
		dump:   *dump,
	}

	switch strings.ToLower(*e) {
	case encoderBoth:
		cfg.runHuffman, cfg.runRLE = true, true
	case encoderHuffman:
		cfg.runHuffman = true
	case encoderRunLength:
		cfg.runRLE = true
	default:
		return config{}, fmt.Errorf("-e: unknown encoder %q", *e)
	}

	if cfg.outDir == "" {
		if cfg.input == "" {
			cfg.outDir = "."
		} else {
			cfg.outDir = filepath.Dir(cfg.input)
		}
	}
	return cfg, nil
}

func run(cfg config) error {
	text, err := readInput(cfg.input)
	if err != nil {
		return err
	}
	symbols := textcompress.Symbols(text)

	var written []string

	if cfg.runRLE {
		rle, err := textcompress.RunLengthEncode(symbols)
		if err != nil {
			return fmt.Errorf("run-length encoding: %w", err)
		}
		path, err := writeOutput(cfg.outDir, rleFileName, []byte(rle))
		if err != nil {
			return err
		}
		written = append(written, path)
	}

	if cfg.runHuffman {
		ft := textcompress.Analyze(symbols)
		ct := textcompress.BuildCodeTable(ft)
		if cfg.dump {
			log.Infof("%s", ct.DebugString())
		}
		bits, err := textcompress.HuffmanEncode(symbols, ct)
		if err != nil {
			return fmt.Errorf("Huffman encoding: %w", err)
		}
		log.Infof("Huffman: %d symbols -> %d bits, %d with a fixed-width code (%s)", ft.Total(), len(bits), ft.FixedWidthSize(), ct)

		path, err := writeOutput(cfg.outDir, huffmanFileName, []byte(bits))
		if err != nil {
			return err
		}
		written = append(written, path)

		if cfg.packed {
			path, err := writePacked(cfg.outDir, bits)
			if err != nil {
				return err
			}
			written = append(written, path)
		}
	}

	log.Infof("Compression complete. Compressed files saved to:\n%s", strings.Join(written, "\n"))
	return nil
}

// readInput returns the input bytes unchanged.  Line endings are not
// normalized and no trailing newline is added.
func readInput(path string) (string, error) {
	var raw []byte
	var err error
	if path == "" {
		raw, err = ioutil.ReadAll(os.Stdin)
	} else {
		raw, err = ioutil.ReadFile(path)
	}
	if err != nil {
		return "", fmt.Errorf("reading input: %w", err)
	}
	log.Debugf("read %d bytes", len(raw))
	return string(raw), nil
}

func writeOutput(dir, name string, data []byte) (string, error) {
	path := filepath.Join(dir, name)
	if err := ioutil.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("writing %s: %w", name, err)
	}
	log.Debugf("wrote %d bytes to %s", len(data), path)
	return path, nil
}

func writePacked(dir, bits string) (path string, err error) {
	path = filepath.Join(dir, huffmanBinName)
	file, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("writing %s: %w", huffmanBinName, err)
	}
	defer func() {
		if closeErr := file.Close(); err == nil && closeErr != nil {
			err = fmt.Errorf("writing %s: %w", huffmanBinName, closeErr)
		}
	}()

	n, err := bitpack.Pack(file, bits)
	if err != nil {
		return "", fmt.Errorf("writing %s: %w", huffmanBinName, err)
	}
	log.Debugf("wrote %d bytes to %s", n, path)
	return path, nil
}

// Package conn hands frame buffers to a display stack.
//
// It does not implement any bus itself: a [Writer] pushes pixel words over an existing
// periph.io connection, such as an SPI port or an I²C device, and [Show] passes an image
// to a periph.io display driver.
package conn

import (
	"encoding/binary"
	"errors"
	"fmt"
	"log"
	"os"

	"periph.io/x/conn/v3"

	"github.com/BeatGlow/framebuf"
	"github.com/BeatGlow/framebuf/pixel"
)

var debug bool

func init() {
	debug = os.Getenv("FRAMEBUF_DEBUG") != ""
}

// Errors
var (
	ErrNilConn   = errors.New("conn: connection is nil")
	ErrNilDrawer = errors.New("conn: display is nil")
)

// WriterConfig describes how data is split into transactions.
type WriterConfig struct {
	// BatchSize is the maximum number of bytes per transaction, at least 2.
	BatchSize int

	// Order is the byte order of pixel words on the wire.
	Order binary.ByteOrder
}

// DefaultWriterConfig are the default configuration values.
var DefaultWriterConfig = WriterConfig{
	BatchSize: 4096,
	Order:     binary.BigEndian,
}

// Writer writes data to a connection in batches.
//
// A Writer is not safe for concurrent use.
type Writer struct {
	c         conn.Conn
	batchSize int
	order     binary.ByteOrder
	scratch   []byte
}

// NewWriter returns a Writer for c. A nil config uses [DefaultWriterConfig], zero values
// in config are replaced by their default.
func NewWriter(c conn.Conn, config *WriterConfig) (*Writer, error) {
	if c == nil {
		return nil, ErrNilConn
	}
	if config == nil {
		config = new(WriterConfig)
		*config = DefaultWriterConfig
	}

	w := &Writer{
		c:         c,
		batchSize: config.BatchSize,
		order:     config.Order,
	}
	if w.batchSize == 0 {
		w.batchSize = DefaultWriterConfig.BatchSize
	}
	if w.batchSize < 2 {
		return nil, fmt.Errorf("conn: invalid batch size %d", config.BatchSize)
	}
	if w.order == nil {
		w.order = DefaultWriterConfig.Order
	}
	return w, nil
}

func (w *Writer) String() string {
	return fmt.Sprintf("%s (%d bytes per batch)", w.c, w.batchSize)
}

// Write p in batches of at most the configured batch size.
func (w *Writer) Write(p []byte) (n int, err error) {
	if debug && len(p) > w.batchSize {
		log.Printf("conn: write %d bytes of data in %d chunks", len(p), (len(p)+w.batchSize-1)/w.batchSize)
	}
	for len(p) > 0 {
		chunk := p[:min(len(p), w.batchSize)]
		if err = w.c.Tx(chunk, nil); err != nil {
			return
		}
		n += len(chunk)
		p = p[len(chunk):]
	}
	return
}

// WriteWords encodes words in the configured byte order and writes them in batches.
func (w *Writer) WriteWords(words []uint16) error {
	perBatch := w.batchSize / 2
	if debug {
		log.Printf("conn: write %d words in %d chunks", len(words), (len(words)+perBatch-1)/perBatch)
	}
	if size := min(len(words), perBatch) * 2; cap(w.scratch) < size {
		w.scratch = make([]byte, size)
	}
	for len(words) > 0 {
		n := min(len(words), perBatch)
		buf := w.scratch[:n*2]
		for i, v := range words[:n] {
			w.order.PutUint16(buf[i*2:], v)
		}
		if err := w.c.Tx(buf, nil); err != nil {
			return err
		}
		words = words[n:]
	}
	return nil
}

// Flush writes all pixels of b as words, in row-major order.
func Flush[C pixel.Color16](w *Writer, b *framebuf.Buffer[C]) error {
	return w.WriteWords(framebuf.AsWords(b))
}

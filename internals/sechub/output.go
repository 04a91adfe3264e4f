package sechub

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
	"strings"
	"syscall"
	"time"

	"github.com/aws/aws-sdk-go/aws/awsutil"
	"github.com/aws/aws-sdk-go/private/protocol/json/jsonutil"
	"github.com/sechub/sechub-cli/internals/cli"
	"github.com/sechub/sechub-cli/internals/cli/pager"
	"github.com/sechub/sechub-cli/internals/cli/ui"
	"github.com/sechub/sechub-cli/internals/dispatch"
	yaml "gopkg.in/yaml.v2"
)

const (
	formatJSON = "json"
	formatYAML = "yaml"
	formatText = "text"
)

// outputFormat is the encoding of records written to the output.
type outputFormat string

// Set validates and sets the output format.
func (f *outputFormat) Set(value string) error {
	value = strings.ToLower(strings.TrimSpace(value))
	switch value {
	case formatJSON, formatYAML, formatText:
		*f = outputFormat(value)
		return nil
	default:
		return ErrInvalidOutputFormat(value)
	}
}

func (f outputFormat) String() string {
	return string(f)
}

func (f outputFormat) Type() string {
	return "outputFormat"
}

// encode returns the encoded record, terminated by a newline.
func (f outputFormat) encode(record interface{}) ([]byte, error) {
	switch f {
	case formatYAML:
		return encodeYAML(record)
	case formatText:
		return encodeText(record), nil
	default:
		return encodeJSON(record)
	}
}

// encodeJSON encodes API shapes with the field names of the API and
// other values with the standard encoding.
func encodeJSON(record interface{}) ([]byte, error) {
	var data []byte
	var err error
	switch v := record.(type) {
	case dispatch.Document:
		data = v
	case time.Time:
		data, err = json.Marshal(v.Format(time.RFC3339))
	default:
		if isShape(record) {
			data, err = jsonutil.BuildJSON(record)
		} else {
			data, err = json.Marshal(record)
		}
	}
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	err = json.Indent(&buf, data, "", "  ")
	if err != nil {
		return nil, err
	}
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}

// encodeYAML encodes a record as a YAML document. Records are converted
// through their JSON encoding, so keys follow the API and keep their order.
func encodeYAML(record interface{}) ([]byte, error) {
	data, err := encodeJSON(record)
	if err != nil {
		return nil, err
	}

	var doc interface{}
	if bytes.HasPrefix(bytes.TrimSpace(data), []byte("{")) {
		var m yaml.MapSlice
		err = yaml.Unmarshal(data, &m)
		doc = m
	} else {
		err = yaml.Unmarshal(data, &doc)
	}
	if err != nil {
		return nil, err
	}

	out, err := yaml.Marshal(doc)
	if err != nil {
		return nil, err
	}
	return append([]byte("---\n"), out...), nil
}

// encodeText returns a human readable representation of the record.
func encodeText(record interface{}) []byte {
	var text string
	switch v := record.(type) {
	case time.Time:
		text = v.Format(time.RFC3339)
	case dispatch.Document:
		text = string(v)
	case []string:
		text = strings.Join(v, "\n")
	default:
		if isShape(record) {
			text = awsutil.Prettify(record)
		} else {
			text = fmt.Sprint(record)
		}
	}
	return []byte(strings.TrimRight(text, "\n") + "\n")
}

// isShape returns true for API structures and lists or maps of them.
func isShape(v interface{}) bool {
	t := reflect.TypeOf(v)
	for t != nil {
		switch t.Kind() {
		case reflect.Ptr, reflect.Slice, reflect.Map:
			t = t.Elem()
		case reflect.Struct:
			return t != reflect.TypeOf(time.Time{})
		default:
			return false
		}
	}
	return false
}

// Output configures where and how records are written.
type Output struct {
	io           ui.IO
	format       outputFormat
	usePager     bool
	pagerCommand string
	newPager     func(w io.WriteCloser, command string) (io.WriteCloser, error)
}

// NewOutput creates an Output that writes to the standard output.
// Records are written as JSON unless another format is configured.
func NewOutput(io ui.IO) *Output {
	return &Output{
		io:       io,
		newPager: pager.NewOrFallback,
	}
}

// Register the flags for configuration on a cli application.
func (o *Output) Register(app *cli.App) {
	flags := app.PersistentFlags()
	flags.VarP(&o.format, "output", "o", "The `format` of the output: json, yaml or text. Operation results default to json, listings to a table.")
	flags.BoolVar(&o.usePager, "pager", false, "Show the output in a terminal pager. Ignored when the output is piped.")
	flags.StringVar(&o.pagerCommand, "pager-command", "", "The terminal pager to use. Defaults to $PAGER, less or more.").Hidden()
}

// Open returns an emitter writing to the configured destination.
// The emitter must be closed when all records are written.
func (o *Output) Open() (*RecordWriter, error) {
	w := nopCloser{Writer: o.io.Output()}
	if !o.usePager || o.io.IsOutputPiped() {
		return &RecordWriter{w: w, format: o.format}, nil
	}

	p, err := o.newPager(w, o.pagerCommand)
	if err != nil {
		return nil, err
	}
	return &RecordWriter{w: p, format: o.format}, nil
}

// RecordWriter emits records in a format.
type RecordWriter struct {
	w      io.WriteCloser
	format outputFormat
}

// Emit writes the encoded record. It returns dispatch.ErrOutputClosed when
// the reader of the output has gone away.
func (e *RecordWriter) Emit(record interface{}) error {
	data, err := e.format.encode(record)
	if err != nil {
		return err
	}

	_, err = e.w.Write(data)
	if isOutputClosed(err) {
		return dispatch.ErrOutputClosed
	}
	return err
}

// Close flushes the output and waits for a terminal pager to exit.
func (e *RecordWriter) Close() error {
	return e.w.Close()
}

func isOutputClosed(err error) bool {
	return err == pager.ErrPagerClosed || err == pager.ErrPagerNotFound || errors.Is(err, syscall.EPIPE)
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error {
	return nil
}

package projectlog

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
)

const (
	defaultTimestampFormat = time.RFC3339

	LogPrefixName = "reserva_bot"
)

// LogFormat is the fixed envelope of every log line
type LogFormat struct {
	Level    interface{}            `json:"level,omitempty"`
	Module   interface{}            `json:"module,omitempty"`
	Time     interface{}            `json:"time,omitempty"`
	File     interface{}            `json:"file,omitempty"`
	Function interface{}            `json:"function,omitempty"`
	Msg      interface{}            `json:"msg,omitempty"`
	Fields   map[string]interface{} `json:"fields,omitempty"`
}

// JSONFormatter renders one JSON object per line with a fixed module field.
// Entry fields (request_id and friends) land under "fields".
type JSONFormatter struct {
	// TimestampFormat sets the format used for marshaling timestamps
	TimestampFormat string

	// PrettyPrint will indent all json logs
	PrettyPrint bool
}

func (f *JSONFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	timestampFormat := f.TimestampFormat
	if timestampFormat == "" {
		timestampFormat = defaultTimestampFormat
	}

	out := &LogFormat{
		Level:  entry.Level.String(),
		Module: LogPrefixName,
		Time:   entry.Time.Format(timestampFormat),
		Msg:    entry.Message,
	}
	if entry.HasCaller() {
		out.Function = entry.Caller.Function
		out.File = fmt.Sprintf("%s:%d", entry.Caller.File, entry.Caller.Line)
	}
	if len(entry.Data) > 0 {
		fields := make(map[string]interface{}, len(entry.Data))
		for k, v := range entry.Data {
			if err, ok := v.(error); ok {
				// errors are ignored by encoding/json
				// https://github.com/sirupsen/logrus/issues/137
				fields[k] = err.Error()
				continue
			}
			fields[k] = v
		}
		out.Fields = fields
	}

	var b *bytes.Buffer
	if entry.Buffer != nil {
		b = entry.Buffer
	} else {
		b = &bytes.Buffer{}
	}

	encoder := json.NewEncoder(b)
	if f.PrettyPrint {
		encoder.SetIndent("", "  ")
	}
	if err := encoder.Encode(out); err != nil {
		return nil, fmt.Errorf("failed to marshal fields to JSON, %v", err)
	}

	return b.Bytes(), nil
}

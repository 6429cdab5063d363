package playground

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	app_errors "fpt-assistant/core/internal/errors"
	"fpt-assistant/core/internal/model"
)

// ErrMalformedEvent is returned when a stream frame is not a valid run event.
var ErrMalformedEvent = errors.New("malformed run event")

// StreamRun posts one user turn and sends every decoded run event to ch, in
// arrival order. ch is always closed when StreamRun returns. Cancelling ctx
// closes the response body; the returned error is then the context's cause.
func (c *Client) StreamRun(ctx context.Context, req *RunRequest, ch chan<- model.RunEvent) error {
	defer close(ch)

	var body bytes.Buffer
	form := multipart.NewWriter(&body)
	fields := [][2]string{
		{"message", req.Message},
		{"stream", "true"},
		{"monitor", "false"},
		{"session_id", req.SessionID},
		{"user_id", req.UserID},
	}
	for _, f := range fields {
		if err := form.WriteField(f[0], f[1]); err != nil {
			return fmt.Errorf("could not build run form: %w", err)
		}
	}
	if err := form.Close(); err != nil {
		return fmt.Errorf("could not build run form: %w", err)
	}

	resp, err := c.do(ctx, c.stream, http.MethodPost, c.route("agents", req.AgentID, "runs"), req.UserID, &body, form.FormDataContentType())
	if err != nil {
		if ctx.Err() != nil {
			return context.Cause(ctx)
		}
		return fmt.Errorf("start run: %w: %w", app_errors.ErrUpstream, err)
	}
	defer resp.Body.Close()
	if err := checkStatus("start run", resp); err != nil {
		return err
	}

	dec := NewEventDecoder(resp.Body)
	for {
		event, err := dec.Next()
		if err != nil {
			if ctx.Err() != nil {
				return context.Cause(ctx)
			}
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
		select {
		case ch <- event:
		case <-ctx.Done():
			return context.Cause(ctx)
		}
	}
}

type framing int

const (
	framingUnknown framing = iota
	framingSSE
	framingJSON
)

// EventDecoder reads run events from a response body. It accepts Server-Sent
// Events (`data:` lines, blank-line separated, optional `[DONE]` sentinel) and
// a bare sequence of concatenated JSON objects; the framing is detected from
// the first non-space byte.
type EventDecoder struct {
	r    *bufio.Reader
	mode framing
	json *json.Decoder
}

// NewEventDecoder wraps r.
func NewEventDecoder(r io.Reader) *EventDecoder {
	return &EventDecoder{r: bufio.NewReader(r)}
}

// Next returns the next event, io.EOF at the clean end of the stream, or an
// error wrapping ErrMalformedEvent for an undecodable frame.
func (d *EventDecoder) Next() (model.RunEvent, error) {
	if d.mode == framingUnknown {
		if err := d.detect(); err != nil {
			return model.RunEvent{}, err
		}
	}
	if d.mode == framingJSON {
		return d.nextJSON()
	}
	return d.nextSSE()
}

func (d *EventDecoder) detect() error {
	for {
		b, err := d.r.Peek(1)
		if err != nil {
			return err
		}
		switch b[0] {
		case ' ', '\t', '\r', '\n':
			if _, err := d.r.ReadByte(); err != nil {
				return err
			}
			continue
		case '{':
			d.mode = framingJSON
			d.json = json.NewDecoder(d.r)
		default:
			d.mode = framingSSE
		}
		return nil
	}
}

func (d *EventDecoder) nextJSON() (model.RunEvent, error) {
	var event model.RunEvent
	if err := d.json.Decode(&event); err != nil {
		if errors.Is(err, io.EOF) {
			return model.RunEvent{}, io.EOF
		}
		var syntaxErr *json.SyntaxError
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &syntaxErr) || errors.As(err, &typeErr) || errors.Is(err, io.ErrUnexpectedEOF) {
			return model.RunEvent{}, fmt.Errorf("%w: %w", ErrMalformedEvent, err)
		}
		return model.RunEvent{}, err
	}
	return event, nil
}

func (d *EventDecoder) nextSSE() (model.RunEvent, error) {
	var data [][]byte
	for {
		line, err := d.r.ReadBytes('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return model.RunEvent{}, err
		}
		eof := errors.Is(err, io.EOF)
		line = bytes.TrimRight(line, "\r\n")

		if len(line) == 0 {
			if len(data) > 0 {
				return decodeFrame(bytes.Join(data, []byte("\n")))
			}
			if eof {
				return model.RunEvent{}, io.EOF
			}
			continue
		}

		if payload, ok := bytes.CutPrefix(line, []byte("data:")); ok {
			data = append(data, bytes.TrimPrefix(payload, []byte(" ")))
		}
		// Other fields (event:, id:, retry:) and comments are ignored.

		if eof {
			if len(data) > 0 {
				return decodeFrame(bytes.Join(data, []byte("\n")))
			}
			return model.RunEvent{}, io.EOF
		}
	}
}

func decodeFrame(frame []byte) (model.RunEvent, error) {
	frame = bytes.TrimSpace(frame)
	if bytes.Equal(frame, []byte("[DONE]")) {
		return model.RunEvent{}, io.EOF
	}
	var event model.RunEvent
	if err := json.Unmarshal(frame, &event); err != nil {
		return model.RunEvent{}, fmt.Errorf("%w: %w", ErrMalformedEvent, err)
	}
	return event, nil
}

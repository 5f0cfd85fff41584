package runner

import (
	"bufio"
	"context"
	"io"
	"strings"
)

type line struct {
	text string
	err  error
}

// linePump reads lines in a background goroutine so a blocked read
// never prevents the loop from observing context cancellation.
type linePump struct {
	lines chan line
}

func newLinePump(ctx context.Context, r io.Reader) *linePump {
	p := &linePump{lines: make(chan line)}
	go func() {
		defer close(p.lines)
		br := bufio.NewReader(r)
		for {
			text, err := br.ReadString('\n')
			if text != "" || err == nil {
				if !p.send(ctx, line{text: strings.TrimRight(text, "\r\n")}) {
					return
				}
			}
			if err != nil {
				p.send(ctx, line{err: err})
				return
			}
		}
	}()
	return p
}

// next blocks until a line arrives or ctx is done.
func (p *linePump) next(ctx context.Context) (string, error) {
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case l, ok := <-p.lines:
		if !ok {
			return "", io.EOF
		}
		return l.text, l.err
	}
}

func (p *linePump) send(ctx context.Context, l line) bool {
	select {
	case p.lines <- l:
		return true
	case <-ctx.Done():
		return false
	}
}

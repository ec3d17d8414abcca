package console

import (
	"encoding/json"
	"fmt"
	"io"
)

type responder struct {
	w    io.Writer
	json bool
}

func (r responder) err(msg string) {
	if r.json {
		r.writeJSON(map[string]any{"ok": false, "error": msg})
		return
	}
	fmt.Fprintln(r.w, "error: "+msg)
}

func (r responder) ok(text string, payload map[string]any) {
	if r.json {
		out := map[string]any{"ok": true}
		for k, v := range payload {
			out[k] = v
		}
		r.writeJSON(out)
		return
	}
	fmt.Fprintln(r.w, text)
}

func (r responder) writeJSON(v any) {
	b, err := json.Marshal(v)
	if err != nil {
		fmt.Fprintf(r.w, "{\"ok\":false,\"error\":%q}\n", err.Error())
		return
	}
	r.w.Write(append(b, '\n'))
}

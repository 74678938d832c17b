package format

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
)

// WriteEDN writes v as EDN. It targets the subset the CLI payloads need:
// maps, vectors, strings, numbers, booleans, nil. Values are round-tripped
// through JSON first so the json tags decide field naming, and map keys come
// out as sorted keywords for stable output.
func WriteEDN(w io.Writer, v any, pretty bool) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	var x any
	if err := json.Unmarshal(b, &x); err != nil {
		return err
	}

	var buf bytes.Buffer
	writeEDNValue(&buf, x, 0, pretty)
	buf.WriteByte('\n')
	_, err = w.Write(buf.Bytes())
	return err
}

const ednIndent = 2

func writeEDNValue(buf *bytes.Buffer, v any, level int, pretty bool) {
	switch t := v.(type) {
	case nil:
		buf.WriteString("nil")
	case bool:
		buf.WriteString(strconv.FormatBool(t))
	case string:
		buf.WriteString(strconv.Quote(t))
	case float64:
		// JSON numbers arrive as float64; print whole values as ints.
		if float64(int64(t)) == t {
			buf.WriteString(strconv.FormatInt(int64(t), 10))
			return
		}
		buf.WriteString(strconv.FormatFloat(t, 'f', -1, 64))
	case []any:
		writeEDNVector(buf, t, level, pretty)
	case map[string]any:
		writeEDNMap(buf, t, level, pretty)
	default:
		buf.WriteString(strconv.Quote(fmt.Sprintf("%v", v)))
	}
}

func writeEDNVector(buf *bytes.Buffer, xs []any, level int, pretty bool) {
	buf.WriteByte('[')
	for i, it := range xs {
		if pretty {
			buf.WriteByte('\n')
			buf.WriteString(strings.Repeat(" ", (level+1)*ednIndent))
		} else if i > 0 {
			buf.WriteByte(' ')
		}
		writeEDNValue(buf, it, level+1, pretty)
	}
	if pretty && len(xs) > 0 {
		buf.WriteByte('\n')
		buf.WriteString(strings.Repeat(" ", level*ednIndent))
	}
	buf.WriteByte(']')
}

func writeEDNMap(buf *bytes.Buffer, m map[string]any, level int, pretty bool) {
	buf.WriteByte('{')
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for i, k := range keys {
		if pretty {
			buf.WriteByte('\n')
			buf.WriteString(strings.Repeat(" ", (level+1)*ednIndent))
		} else if i > 0 {
			buf.WriteByte(' ')
		}
		buf.WriteByte(':')
		buf.WriteString(ednKeyword(k))
		buf.WriteByte(' ')
		writeEDNValue(buf, m[k], level+1, pretty)
	}
	if pretty && len(keys) > 0 {
		buf.WriteByte('\n')
		buf.WriteString(strings.Repeat(" ", level*ednIndent))
	}
	buf.WriteByte('}')
}

// ednKeyword turns a JSON field name into a keyword body. JSON tags here are
// already camelCase identifiers; anything else would need escaping we don't do.
func ednKeyword(s string) string {
	s = strings.TrimSpace(s)
	return strings.ReplaceAll(s, " ", "-")
}

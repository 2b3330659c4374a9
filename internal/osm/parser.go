package osm

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/google/uuid"
)

// versionObjectType identifies the object that carries the schema version.
const versionObjectType = "OS:Version"

// ParseFile reads and parses a model file.
func ParseFile(path string) (*Model, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open model file: %w", err)
	}
	defer func() { _ = f.Close() }()

	return Parse(f)
}

// Parse decodes the IDF-style text format: each object is a type identifier
// followed by comma-separated fields and a terminating semicolon. Comments
// start with "!" and run to end of line. An object's first field is its
// handle in "{uuid}" form; objects without one get a fresh handle.
func Parse(r io.Reader) (*Model, error) {
	var content strings.Builder
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 4*1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		if i := strings.IndexByte(line, '!'); i >= 0 {
			line = line[:i]
		}
		content.WriteString(line)
		content.WriteByte('\n')
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read model: %w", err)
	}

	model := NewModel("")

	for idx, stmt := range strings.Split(content.String(), ";") {
		stmt = strings.TrimSpace(stmt)
		if stmt == "" {
			continue
		}

		parts := strings.Split(stmt, ",")
		typeName := strings.TrimSpace(parts[0])
		if typeName == "" {
			return nil, fmt.Errorf("object %d has an empty type identifier", idx+1)
		}

		fields := make([]string, 0, len(parts)-1)
		for _, p := range parts[1:] {
			fields = append(fields, strings.TrimSpace(p))
		}

		obj := NewObject(typeName)
		if len(fields) > 0 && isHandleField(fields[0]) {
			h, err := uuid.Parse(strings.Trim(fields[0], "{}"))
			if err != nil {
				return nil, fmt.Errorf("object %d (%s) has a malformed handle %q: %w", idx+1, typeName, fields[0], err)
			}
			obj.setHandle(h)
			fields = fields[1:]
		}
		obj.fields = fields

		if err := model.AddObject(obj); err != nil {
			return nil, fmt.Errorf("object %d (%s): %w", idx+1, typeName, err)
		}

		if typeName == versionObjectType && model.version == "" {
			model.version = obj.Name()
		}
	}

	return model, nil
}

func isHandleField(s string) bool {
	return strings.HasPrefix(s, "{") && strings.HasSuffix(s, "}")
}

package common

import (
	"fmt"

	"github.com/buildsim-labs/oslens/internal/workspace"
)

// BuildAppData assembles the app view from the published session state,
// applying the class and keyword filters. An empty workspace yields the
// pre-upload view.
func BuildAppData(ws *workspace.Workspace, class, keyword string) AppData {
	snap, ok := ws.Snapshot()
	if !ok {
		return AppData{}
	}

	data := AppData{
		FileName:      snap.FileName,
		Version:       snap.Model.Version(),
		ObjectCount:   snap.Model.NumObjects(),
		TypeOptions:   snap.Catalog.SortedTypes(),
		SelectedClass: class,
		Keyword:       keyword,
		TotalRows:     len(snap.Catalog.Rows()),
	}

	for _, row := range snap.Catalog.FilterRows(class, keyword) {
		data.Rows = append(data.Rows, RowData{ObjectType: row.ObjectType, Method: row.Method})
	}

	if class != "" {
		data.Example = BuildExample(snap, class)
	}

	return data
}

// BuildExample resolves a type's representative object for display.
func BuildExample(snap workspace.Snapshot, typeName string) *ExampleData {
	example := &ExampleData{TypeName: typeName}

	handle, ok := snap.Catalog.Representative(typeName)
	if !ok {
		example.Error = fmt.Sprintf("No example object found for type: %s.", typeName)
		return example
	}

	obj, ok := snap.Model.Object(handle)
	if !ok {
		example.Error = fmt.Sprintf("Failed to retrieve example object for %s.", typeName)
		return example
	}

	example.Name = obj.Name()
	example.Text = obj.Text()
	return example
}

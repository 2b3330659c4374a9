// Package common provides data types and components shared by the UI
// features.
package common

// RowData is one flattened catalog row in component-friendly form.
type RowData struct {
	ObjectType string
	Method     string
}

// ExampleData carries the example rendering of one representative object.
type ExampleData struct {
	TypeName string
	Name     string
	Text     string
	Error    string
}

// AppData is everything the app shell needs to render.
type AppData struct {
	// FileName is empty until a model has been uploaded.
	FileName    string
	Version     string
	ObjectCount int

	// TypeOptions feeds the class filter dropdown, sorted.
	TypeOptions   []string
	SelectedClass string
	Keyword       string

	Rows      []RowData
	TotalRows int

	Example *ExampleData
}

package osm

import (
	"fmt"
	"strconv"
	"strings"
)

// CurrentVersion is the schema version this build works with in memory.
const CurrentVersion = "3.9.0"

// Load reads a model file that is already at the current schema version.
// Older files must go through the VersionTranslator instead.
func Load(path string) (*Model, error) {
	model, err := ParseFile(path)
	if err != nil {
		return nil, err
	}
	if model.Version() == "" {
		return nil, fmt.Errorf("model has no %s object", versionObjectType)
	}
	if model.Version() != CurrentVersion {
		return nil, fmt.Errorf("model version %s does not match %s; use the version translator", model.Version(), CurrentVersion)
	}
	return model, nil
}

// VersionTranslator upgrades models written by older schema versions to the
// current in-memory schema.
type VersionTranslator struct{}

// NewVersionTranslator creates a translator.
func NewVersionTranslator() *VersionTranslator {
	return &VersionTranslator{}
}

// migration upgrades a model from one schema version to the next.
type migration struct {
	from  string
	to    string
	apply func(*Model)
}

// migrations is the ordered upgrade chain ending at CurrentVersion.
var migrations = []migration{
	{
		from: "3.7.0",
		to:   "3.8.0",
		apply: func(m *Model) {
			// 3.8.0 replaced air wall materials with air boundary
			// constructions.
			renameType(m, "OS:Material:AirWall", "OS:Construction:AirBoundary")
		},
	},
	{
		from: "3.8.0",
		to:   "3.9.0",
		apply: func(m *Model) {
			// 3.9.0 added the Standards Building Type field to OS:Building.
			for _, o := range m.Objects() {
				if o.IddObjectType() == "OS:Building" && o.NumFields() < buildingNumFields {
					o.SetField(buildingNumFields-1, "")
				}
			}
		},
	},
}

// LoadModel reads a model file, upgrading it to CurrentVersion when it was
// written by an older schema. It fails when the file has no version object,
// is newer than this build, or has no translation path.
func (t *VersionTranslator) LoadModel(path string) (*Model, error) {
	model, err := ParseFile(path)
	if err != nil {
		return nil, err
	}
	if model.Version() == "" {
		return nil, fmt.Errorf("model has no %s object", versionObjectType)
	}

	for model.Version() != CurrentVersion {
		if compareVersions(model.Version(), CurrentVersion) > 0 {
			return nil, fmt.Errorf("model version %s is newer than supported version %s", model.Version(), CurrentVersion)
		}

		step, ok := migrationFrom(model.Version())
		if !ok {
			return nil, fmt.Errorf("no translation path from version %s", model.Version())
		}
		step.apply(model)
		model.setVersion(step.to)
	}

	return model, nil
}

func migrationFrom(version string) (migration, bool) {
	for _, step := range migrations {
		if step.from == version {
			return step, true
		}
	}
	return migration{}, false
}

func renameType(m *Model, from, to string) {
	for _, o := range m.Objects() {
		if o.IddObjectType() == from {
			o.setType(to)
		}
	}
}

// compareVersions compares dotted numeric versions: -1, 0, or 1.
func compareVersions(a, b string) int {
	as := strings.Split(a, ".")
	bs := strings.Split(b, ".")
	for i := 0; i < len(as) || i < len(bs); i++ {
		av, bv := 0, 0
		if i < len(as) {
			av, _ = strconv.Atoi(as[i])
		}
		if i < len(bs) {
			bv, _ = strconv.Atoi(bs[i])
		}
		switch {
		case av < bv:
			return -1
		case av > bv:
			return 1
		}
	}
	return 0
}

package nbt

import (
	"fmt"
	"path/filepath"
	"strings"
)

// ValidateFormat checks structural validity: the document has a root
// compound and fully re-serializes. Returned strings are fatal errors; an
// empty slice means the document is structurally sound.
func (f *File) ValidateFormat() (bool, []string) {
	var errs []string
	if f.Root == nil {
		errs = append(errs, "NBT file has no root tag")
		return false, errs
	}
	if _, err := EncodePayload(f.Root); err != nil {
		errs = append(errs, fmt.Sprintf("invalid NBT structure: %v", err))
		return false, errs
	}
	return true, nil
}

// ValidateCompatibility runs filename-driven heuristics for known game
// files and returns advisory warnings. The checks are expectations, not
// requirements: a level.dat without a DataVersion is unusual but still a
// well-formed NBT document, so warnings never block a save.
func (f *File) ValidateCompatibility(path string) (bool, []string) {
	var warnings []string
	filename := strings.ToLower(filepath.Base(path))

	switch {
	case filename == "level.dat":
		data, ok := f.Root.Get("Data")
		if !ok {
			warnings = append(warnings, "level.dat missing 'Data' tag")
			break
		}
		dataCompound, ok := data.(*Compound)
		if !ok {
			break
		}
		if !dataCompound.Has("DataVersion") {
			warnings = append(warnings, "level.dat missing 'DataVersion' tag")
		}
		if !dataCompound.Has("Version") {
			warnings = append(warnings, "level.dat missing 'Version' tag")
		}

	case strings.HasSuffix(filename, ".dat") && strings.Contains(strings.ToLower(path), "playerdata"):
		if !f.Root.Has("DataVersion") {
			warnings = append(warnings, "player data file missing 'DataVersion' tag")
		}
		if f.Root.Len() == 0 {
			warnings = append(warnings, "player data file appears to be empty")
		}
	}

	return len(warnings) == 0, warnings
}

// Validate combines the structural check with the compatibility heuristics.
// isValid reflects only structural soundness; issues collects fatal errors
// when invalid, advisory warnings otherwise.
func (f *File) Validate(path string) (bool, []string) {
	ok, errs := f.ValidateFormat()
	if !ok {
		return false, errs
	}
	_, warnings := f.ValidateCompatibility(path)
	return true, warnings
}

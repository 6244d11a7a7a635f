package scene

import "runtime/debug"

const ebitenModule = "github.com/hajimehoshi/ebiten/v2"

// Title is the banner shown in the top-right corner.
func Title() string {
	return "Ebitengine " + EngineVersion()
}

// EngineVersion reports the linked Ebitengine module version.
func EngineVersion() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "(devel)"
	}
	for _, dep := range info.Deps {
		if dep.Path != ebitenModule {
			continue
		}
		if dep.Replace != nil {
			return dep.Replace.Version
		}
		return dep.Version
	}
	return "(devel)"
}

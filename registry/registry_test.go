package registry

import (
	"testing"

	"github.com/lixenwraith/vi-pong/config"
	"github.com/lixenwraith/vi-pong/engine"
)

type nopSystem struct{}

func (nopSystem) Update()       {}
func (nopSystem) Priority() int { return 0 }

func TestRegisterSystem(t *testing.T) {
	RegisterSystem("zz-test", func(*engine.World) engine.System { return nopSystem{} })
	RegisterSystem("aa-test", func(*engine.World) engine.System { return nopSystem{} })

	f, ok := GetSystem("zz-test")
	if !ok {
		t.Fatal("Expected registered factory")
	}
	if f(engine.NewTestWorld(config.VariantClassic)) == nil {
		t.Error("Factory returned nil system")
	}

	if _, ok := GetSystem("missing"); ok {
		t.Error("Unexpected factory for unregistered name")
	}

	names := SystemNames()
	for i := 1; i < len(names); i++ {
		if names[i-1] > names[i] {
			t.Fatalf("SystemNames not sorted: %v", names)
		}
	}
}

package viewdata

import (
	"testing"

	"github.com/dalemusser/commtrack/internal/domain/models"
)

func TestInit_BlankFallsBackToDefault(t *testing.T) {
	t.Cleanup(func() { Init("") })

	Init("Acme Comms")
	if SiteName() != "Acme Comms" {
		t.Errorf("SiteName() = %q", SiteName())
	}

	Init("   ")
	if SiteName() != models.DefaultSiteName {
		t.Errorf("SiteName() = %q, want default", SiteName())
	}
}

func TestNavFor_MarksActive(t *testing.T) {
	items := navFor("/reports")
	if items[0].Active {
		t.Error("Dashboard should not be active on /reports")
	}
	if !items[1].Active {
		t.Error("Reports should be active on /reports")
	}

	items = navFor("/dashboard/data")
	if !items[0].Active {
		t.Error("Dashboard should be active on /dashboard/data")
	}
}

package sheet

import (
	"testing"

	"github.com/swisscomeventandmedia/openspout/config"
	"github.com/swisscomeventandmedia/openspout/options"
	"github.com/swisscomeventandmedia/openspout/style"
)

func testConfig(f config.OutputFmt) *config.Config {
	cfg := &config.Config{}
	cfg.Writer = config.WriterConfig{
		Format:          f,
		DefaultFontName: "Liberation Sans",
		DefaultFontSize: 10,
	}
	return cfg
}

func TestNewSessionPicksRegistryFlavor(t *testing.T) {
	t.Run("ods tracks fonts", func(t *testing.T) {
		s := NewSession(testConfig(config.OutputFmtOds))
		s.Styles.Register(style.NewBuilder().FontName("Georgia").Build())
		fonts := s.UsedFonts()
		if len(fonts) != 1 || fonts[0] != "Georgia" {
			t.Errorf("UsedFonts() = %v, want [Georgia]", fonts)
		}
	})

	t.Run("xlsx does not track fonts", func(t *testing.T) {
		s := NewSession(testConfig(config.OutputFmtXlsx))
		s.Styles.Register(style.NewBuilder().FontName("Georgia").Build())
		if got := s.UsedFonts(); got != nil {
			t.Errorf("UsedFonts() = %v, want nil", got)
		}
	})
}

func TestSessionsAreIndependent(t *testing.T) {
	a := NewSession(testConfig(config.OutputFmtXlsx))
	b := NewSession(testConfig(config.OutputFmtXlsx))

	a.Styles.Register(style.NewBuilder().Bold().Build())
	if got := len(b.Styles.RegisteredStyles()); got != 0 {
		t.Errorf("second session saw %d styles from the first", got)
	}

	a.Options.Set(options.TempFolder, options.String("/tmp/a"))
	if v, _ := b.Options.Get(options.TempFolder); v.String() == "/tmp/a" {
		t.Errorf("second session saw the first session's option value")
	}
}

func TestSessionOptionsFollowFormat(t *testing.T) {
	xlsx := NewSession(testConfig(config.OutputFmtXlsx))
	if !xlsx.Options.Supported(options.UseInlineStrings) {
		t.Errorf("xlsx session does not support inline strings option")
	}

	csv := NewSession(testConfig(config.OutputFmtCsv))
	if csv.Options.Supported(options.UseInlineStrings) {
		t.Errorf("csv session claims to support inline strings option")
	}
	if v, ok := csv.Options.Get(options.FieldDelimiter); !ok || v.String() != "," {
		t.Errorf("csv delimiter default = %v, %v", v, ok)
	}
}

func TestDefaultStyle(t *testing.T) {
	st := DefaultStyle(testConfig(config.OutputFmtXlsx).Writer)
	if st.Font().Name != "Liberation Sans" || st.Font().Size != 10 {
		t.Errorf("DefaultStyle() font = %+v", st.Font())
	}
}

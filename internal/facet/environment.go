package facet

import (
	"strconv"

	"github.com/MikeSquared-Agency/scribe/internal/exchange"
	"github.com/MikeSquared-Agency/scribe/internal/lexicon"
	"github.com/MikeSquared-Agency/scribe/internal/signal"
)

// environmentClassifier reads the session context map the caller supplied.
// Everything session-related is caller-declared — deriving the duration from
// a wall clock here would break replay determinism. Defaults: platform=web,
// device=unknown, timezone=UTC, duration=0.
type environmentClassifier struct {
	lex *lexicon.Snapshot
}

func NewEnvironment(lex *lexicon.Snapshot) Classifier {
	return &environmentClassifier{lex: lex}
}

func (c *environmentClassifier) Name() Name { return NameEnvironment }

func (c *environmentClassifier) Classify(in exchange.Interaction, _ signal.Set) Result {
	ctx := in.SessionContext

	platform := ctx["platform"]
	if platform == "" {
		platform = "web"
	}

	tz := ctx["timezone"]
	if tz == "" {
		tz = "UTC"
	}

	var duration int64
	if raw := ctx["session_duration_ms"]; raw != "" {
		if ms, err := strconv.ParseInt(raw, 10, 64); err == nil && ms >= 0 {
			duration = ms
		}
	}

	return &EnvironmentalContext{
		Platform:          platform,
		Device:            deviceFrom(ctx["device"]),
		Timezone:          tz,
		SessionDurationMs: duration,
	}
}

func deviceFrom(raw string) DeviceClass {
	switch raw {
	case "desktop":
		return DeviceDesktop
	case "mobile":
		return DeviceMobile
	case "tablet":
		return DeviceTablet
	default:
		return DeviceUnknown
	}
}

package cli

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/lexicloud/pkg/service"
)

// ingestTranscript feeds every transcript line through the service under
// the local transcript place. Individual ingest failures are logged and
// skipped so one bad line doesn't abort the profile.
func ingestTranscript(ctx context.Context, svc *service.Service, lines []transcriptLine, logger *log.Logger) {
	p := newProgress(logger)
	if _, err := svc.RegisterPlace(ctx, transcriptPlace); err != nil {
		logger.Error("register transcript place", "err", err)
		return
	}
	ingested := 0
	for _, l := range lines {
		if err := svc.IngestMessage(ctx, transcriptPlace, l.Person, l.Text); err != nil {
			logger.Warn("skipping line", "person", l.Person, "err", err)
			continue
		}
		ingested++
	}
	p.done(fmt.Sprintf("Ingested %d messages", ingested))
}

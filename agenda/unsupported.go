package agenda

import (
	"go.uber.org/zap"
	"golang.org/x/net/html"

	"github.com/legcowatch/agenda-mcp/service/vo"
)

// unsupported keeps the raw elements of motions and members' bills, which
// have no record parser yet
func (d *Document) unsupported(section vo.Section, elements []*html.Node) RawSection {
	d.logger.Debug("section has no record parser", zap.String("section", string(section)), zap.Int("elements", len(elements)))
	return RawSection{Status: vo.StatusUnsupported, Elements: elements}
}

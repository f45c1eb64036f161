package planner

import (
	"fmt"
	"strings"

	"wiper/internal/domain/model"
)

const DefaultBlockSize = "4M"

type Planner struct {
	BlockSize string
}

func New(blockSize string) Planner {
	return Planner{BlockSize: blockSize}
}

type planFunc func(p Planner, device string, passes int) []model.PlannedCommand

var methodPlans = map[model.Method]planFunc{
	model.MethodDD:         planDD,
	model.MethodBlkdiscard: planBlkdiscard,
	model.MethodHdparm:     planHdparm,
	model.MethodNvme:       planNvme,
}

// Plan returns the ordered commands for method on device. It performs no I/O and
// returns equal output for equal input.
func (p Planner) Plan(method model.Method, device string, passes int) ([]model.PlannedCommand, error) {
	fn, ok := methodPlans[method]
	if !ok {
		return nil, fmt.Errorf("%w: %q", model.ErrUnknownMethod, method)
	}
	if passes < 1 {
		return nil, fmt.Errorf("%w: %d (must be >= 1)", model.ErrInvalidPasses, passes)
	}
	cmds := fn(p, device, passes)
	for i := range cmds {
		cmds[i].Ordinal = i + 1
		cmds[i].Of = len(cmds)
	}
	return cmds, nil
}

func (p Planner) blockSize() string {
	if strings.TrimSpace(p.BlockSize) == "" {
		return DefaultBlockSize
	}
	return p.BlockSize
}

func planDD(p Planner, device string, passes int) []model.PlannedCommand {
	bs := p.blockSize()
	out := make([]model.PlannedCommand, 0, passes+1)
	for pass := 1; pass <= passes; pass++ {
		argv := []string{"dd", "if=/dev/urandom", "of=" + device, "bs=" + bs, "status=progress"}
		out = append(out, model.PlannedCommand{
			Text:   fmt.Sprintf("%s (pass %d/%d)", strings.Join(argv, " "), pass, passes),
			Argv:   argv,
			Intent: "random-pass",
		})
	}
	argv := []string{"dd", "if=/dev/zero", "of=" + device, "bs=" + bs, "status=progress"}
	out = append(out, model.PlannedCommand{
		Text:   strings.Join(argv, " ") + " (final)",
		Argv:   argv,
		Intent: "zero-fill",
	})
	return out
}

func planBlkdiscard(_ Planner, device string, _ int) []model.PlannedCommand {
	argv := []string{"blkdiscard", device}
	return []model.PlannedCommand{{
		Text:   strings.Join(argv, " "),
		Argv:   argv,
		Intent: "discard",
	}}
}

// ATA security erase is only ever surfaced for manual execution, so it carries no argv.
func planHdparm(_ Planner, device string, _ int) []model.PlannedCommand {
	text := fmt.Sprintf(
		"hdparm -I %[1]s && hdparm --user-master u --security-set-pass p %[1]s && hdparm --user-master u --security-erase p %[1]s",
		device,
	)
	return []model.PlannedCommand{{
		Text:          text,
		Intent:        "ata-secure-erase",
		Informational: true,
	}}
}

func planNvme(_ Planner, device string, _ int) []model.PlannedCommand {
	argv := []string{"nvme", "sanitize", device, "--sanact=2"}
	return []model.PlannedCommand{{
		Text:   strings.Join(argv, " "),
		Argv:   argv,
		Intent: "sanitize",
	}}
}

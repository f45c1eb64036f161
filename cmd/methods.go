package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"wiper/internal/domain/model"
)

type methodInfo struct {
	Name          model.Method `json:"name"`
	Description   string       `json:"description"`
	UsesPasses    bool         `json:"uses_passes"`
	Informational bool         `json:"informational"`
}

type methodList []methodInfo

func (l methodList) String() string {
	var b strings.Builder
	for _, m := range l {
		fmt.Fprintf(&b, "%-11s %s", m.Name, m.Description)
		if m.Informational {
			b.WriteString(" (printed only, never executed)")
		}
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

var methodDescriptions = map[model.Method]string{
	model.MethodDD:         "overwrite with random data for each pass, then zero-fill",
	model.MethodBlkdiscard: "discard all blocks (SSD/thin-provisioned devices)",
	model.MethodHdparm:     "ATA security erase",
	model.MethodNvme:       "NVMe sanitize (block erase)",
}

func listMethods() methodList {
	out := make(methodList, 0, len(model.Methods()))
	for _, m := range model.Methods() {
		out = append(out, methodInfo{
			Name:          m,
			Description:   methodDescriptions[m],
			UsesPasses:    m == model.MethodDD,
			Informational: m == model.MethodHdparm,
		})
	}
	return out
}

var methodsCmd = &cobra.Command{
	Use:   "methods",
	Short: "List supported wipe methods",
	RunE: func(cmd *cobra.Command, args []string) error {
		return printResult(listMethods())
	},
}

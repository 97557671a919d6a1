package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/linkviz/pkg/errors"
	"github.com/matzehuels/linkviz/pkg/io"
	"github.com/matzehuels/linkviz/pkg/list"
)

// scenario is a built-in example list.
type scenario struct {
	name  string
	title string
	desc  string
	build func(vals ...int) (*list.Arena[int], error)
}

// scenarios lists the demos in display order.
var scenarios = []scenario{
	{"clean", "Linked List", "a proper NULL-terminated list", buildClean},
	{"cycle", "Cyclic List", "the last node links back to the second", buildCycle},
	{"selfloop", "Self-Loop", "the last node links to itself", buildSelfLoop},
	{"dangling", "Use After Free", "the last node is freed while still linked", buildDangling},
	{"corrupt", "Corrupted Link", "the last node holds a never-allocated reference", buildCorrupt},
	{"empty", "Empty List", "no head node", buildEmpty},
	{"delete", "Linked List", "visualize, delete a value, visualize again", buildClean},
}

func findScenario(name string) (scenario, bool) {
	for _, s := range scenarios {
		if s.name == name {
			return s, true
		}
	}
	return scenario{}, false
}

func scenarioNames() []string {
	names := make([]string, len(scenarios))
	for i, s := range scenarios {
		names[i] = s.name
	}
	return names
}

// demoCommand creates the demo command.
func (c *CLI) demoCommand() *cobra.Command {
	var values []int
	var deleteValue int
	var save string

	var long strings.Builder
	long.WriteString("Visualize a built-in example list.\n\nScenarios:\n")
	for _, s := range scenarios {
		fmt.Fprintf(&long, "  %-9s %s\n", s.name, s.desc)
	}

	cmd := &cobra.Command{
		Use:       "demo <scenario>",
		Short:     "Visualize built-in example lists",
		Long:      long.String(),
		ValidArgs: scenarioNames(),
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.bindFlags(cmd); err != nil {
				return err
			}
			sc, _ := findScenario(args[0])
			a, err := sc.build(values...)
			if err != nil {
				return errors.Wrap(errors.ErrCodeInternal, err, "build %s scenario", sc.name)
			}
			opts := c.pipelineOptions(sc.title)

			if err := c.visualize(cmd.Context(), a, opts); err != nil {
				return err
			}

			if sc.name == "delete" {
				found, err := deleteByValue(a, deleteValue)
				if err != nil {
					return errors.Wrap(errors.ErrCodeInternal, err, "delete %d", deleteValue)
				}
				if !found {
					printWarning("Value not found in the list.")
				}
				opts.BaseName += "_after"
				opts.Title = fmt.Sprintf("%s (after deleting %d)", opts.Title, deleteValue)
				if err := c.visualize(cmd.Context(), a, opts); err != nil {
					return err
				}
			}

			if save != "" {
				if err := io.ExportJSON(a, opts.Title, save); err != nil {
					return err
				}
				printFile(save)
			}
			return nil
		},
	}

	addRenderFlags(cmd)
	cmd.Flags().IntSliceVar(&values, "values", []int{1, 2, 3, 4, 5}, "node values")
	cmd.Flags().IntVar(&deleteValue, "delete", 3, "value to delete (delete scenario)")
	cmd.Flags().StringVar(&save, "save", "", "also write the list as a JSON fixture to this path")
	return cmd
}

func buildClean(vals ...int) (*list.Arena[int], error) {
	return list.FromValues(vals...), nil
}

func buildEmpty(...int) (*list.Arena[int], error) {
	return list.NewArena[int](), nil
}

func buildCycle(vals ...int) (*list.Arena[int], error) {
	a := list.FromValues(vals...)
	refs := a.Refs()
	switch {
	case len(refs) > 1:
		return a, a.SetNext(refs[len(refs)-1], refs[1])
	case len(refs) == 1:
		return a, a.SetNext(refs[0], refs[0])
	}
	return a, nil
}

func buildSelfLoop(vals ...int) (*list.Arena[int], error) {
	a := list.FromValues(vals...)
	if refs := a.Refs(); len(refs) > 0 {
		last := refs[len(refs)-1]
		return a, a.SetNext(last, last)
	}
	return a, nil
}

func buildDangling(vals ...int) (*list.Arena[int], error) {
	a := list.FromValues(vals...)
	if refs := a.Refs(); len(refs) > 0 {
		return a, a.Free(refs[len(refs)-1])
	}
	return a, nil
}

func buildCorrupt(vals ...int) (*list.Arena[int], error) {
	a := list.FromValues(vals...)
	if refs := a.Refs(); len(refs) > 0 {
		return a, a.SetNext(refs[len(refs)-1], list.Ref(a.Len()+0xdead))
	}
	return a, nil
}

// deleteByValue unlinks and frees the first node holding v. It reports
// whether such a node was found. The walk stops after Len steps so a
// cyclic list cannot trap it.
func deleteByValue(a *list.Arena[int], v int) (bool, error) {
	head := a.Head()
	if hv, ok := a.Get(head); ok && hv == v {
		a.SetHead(a.Next(head))
		return true, a.Free(head)
	}

	prev := head
	for i := 0; i < a.Len() && a.Live(prev); i++ {
		curr := a.Next(prev)
		cv, ok := a.Get(curr)
		if !ok {
			return false, nil
		}
		if cv == v {
			if err := a.SetNext(prev, a.Next(curr)); err != nil {
				return false, err
			}
			return true, a.Free(curr)
		}
		prev = curr
	}
	return false, nil
}

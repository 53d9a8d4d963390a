package chart

import (
	"io"
	"strconv"

	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/zclconf/go-cty/cty"
)

// WriteHCL writes the chart in the same HCL form Parse reads
func (c *Chart) WriteHCL(w io.Writer) error {
	f := hclwrite.NewEmptyFile()
	body := f.Body()

	for _, n := range c.PlayerCounts() {
		table := body.AppendNewBlock("table", []string{strconv.Itoa(n)})
		table.Body().SetAttributeValue("positions", stringList(c.positions[n]))
	}

	for _, key := range c.order {
		r := c.ranges[key]
		body.AppendNewline()
		block := body.AppendNewBlock("range", []string{r.Position, strconv.Itoa(r.Players)})
		block.Body().SetAttributeValue("hands", stringList(r.Tokens))
		if r.Note != "" {
			block.Body().SetAttributeValue("note", cty.StringVal(r.Note))
		}
	}

	_, err := f.WriteTo(w)
	return err
}

func stringList(ss []string) cty.Value {
	if len(ss) == 0 {
		return cty.ListValEmpty(cty.String)
	}
	vals := make([]cty.Value, len(ss))
	for i, s := range ss {
		vals[i] = cty.StringVal(s)
	}
	return cty.ListVal(vals)
}

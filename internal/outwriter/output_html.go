package outwriter

import (
	"bytes"
	"html/template"
	"io"

	"github.com/huangsam/planchart/internal/chart"
	"github.com/huangsam/planchart/internal/scene"
)

// The page shows one tooltip div. Hovering a mark fills it from the mark's
// data attributes and places it next to the pointer, moving follows the
// pointer while visible and leaving hides it again.
var pageTemplate = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
body { font-family: sans-serif; margin: 20px; }
.hoverable { cursor: pointer; }
</style>
</head>
<body>
{{.SVG}}
<div class="tooltip" style="{{.TipCSS}}"></div>
<script>
(function () {
  var tip = document.querySelector(".tooltip");
  var offsetX = {{.OffsetX}}, offsetY = {{.OffsetY}};
  function place(ev) {
    tip.style.left = (ev.pageX + offsetX) + "px";
    tip.style.top = (ev.pageY + offsetY) + "px";
  }
  document.querySelectorAll(".hoverable").forEach(function (el) {
    el.addEventListener("mouseover", function (ev) {
      tip.textContent = el.dataset.series + ": " + el.dataset.value;
      tip.style.display = "block";
      place(ev);
    });
    el.addEventListener("mousemove", function (ev) {
      if (tip.style.display === "block") {
        place(ev);
      }
    });
    el.addEventListener("mouseout", function () {
      tip.style.display = "none";
    });
  });
})();
</script>
</body>
</html>
`))

type page struct {
	Title   string
	SVG     template.HTML
	TipCSS  template.CSS
	OffsetX int
	OffsetY int
}

// writeChartHTML writes a standalone page embedding the chart and its tooltip.
func writeChartHTML(w io.Writer, res *chart.Result, surface *scene.Surface) error {
	var svg bytes.Buffer
	if err := surface.RenderInline(&svg); err != nil {
		return err
	}
	title := res.Title
	if title == "" {
		title = string(res.Kind) + " chart"
	}
	return pageTemplate.Execute(w, page{
		Title:   title,
		SVG:     template.HTML(svg.String()),
		TipCSS:  template.CSS(chart.TooltipCSS),
		OffsetX: chart.TipOffsetX,
		OffsetY: chart.TipOffsetY,
	})
}

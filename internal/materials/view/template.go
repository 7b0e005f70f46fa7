package view

const pageTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Title}}</title>
<style>
:root {
  --bg: #fff; --fg: #1a1a2e; --card-bg: #f8f9fa; --border: #dee2e6;
  --table-alt: #f1f3f5; --hover: #e9ecef; --muted: #6c757d;
  --accent: #0d6efd;
}
@media (prefers-color-scheme: dark) {
  :root {
    --bg: #1a1a2e; --fg: #e9ecef; --card-bg: #16213e; --border: #495057;
    --table-alt: #0f3460; --hover: #1a1a4e; --muted: #adb5bd;
    --accent: #5b9aff;
  }
}
* { box-sizing: border-box; margin: 0; padding: 0; }
body { font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, sans-serif; background: var(--bg); color: var(--fg); line-height: 1.5; padding: 1rem; max-width: 1200px; margin: 0 auto; }
header { margin-bottom: 1.5rem; }
header h1 { font-size: 1.5rem; margin-bottom: .25rem; }
header p { color: var(--muted); font-size: .875rem; }
.cards { display: grid; grid-template-columns: repeat(auto-fit, minmax(160px, 1fr)); gap: .75rem; margin-bottom: 1.5rem; }
.card { background: var(--card-bg); border: 1px solid var(--border); border-radius: 8px; padding: .75rem; text-align: center; }
.card .value { font-size: 1.75rem; font-weight: 700; color: var(--accent); }
.card .label { font-size: .75rem; color: var(--muted); text-transform: uppercase; }
.charts { display: grid; grid-template-columns: repeat(2, 1fr); gap: 1rem; margin-bottom: 1.5rem; }
@media (max-width: 768px) { .charts { grid-template-columns: 1fr; } }
.chart-box { background: var(--card-bg); border: 1px solid var(--border); border-radius: 8px; padding: 1rem; }
.chart-box h3 { font-size: .875rem; margin-bottom: .5rem; }
.chart-box .empty { color: var(--muted); font-size: .8125rem; padding: 1.5rem 0; text-align: center; }
table { width: 100%; border-collapse: collapse; font-size: .8125rem; }
thead { position: sticky; top: 0; background: var(--card-bg); }
th, td { padding: .5rem .625rem; text-align: left; border-bottom: 1px solid var(--border); }
th { cursor: pointer; user-select: none; white-space: nowrap; }
th:hover { color: var(--accent); }
tr:nth-child(even) { background: var(--table-alt); }
tr:hover { background: var(--hover); }
.sort-arrow { font-size: .625rem; margin-left: .25rem; }
</style>
</head>
<body>
<header>
  <h1>{{.Title}}</h1>
  <p>Generated {{.GeneratedAt}}</p>
</header>

<section class="cards" id="metrics">
  <div class="card"><div class="value">{{.TotalMaterials}}</div><div class="label">Total Materials</div></div>
  <div class="card"><div class="value">{{.Languages}}</div><div class="label">Supported Languages</div></div>
</section>

<section class="charts" id="charts">
  <div class="chart-box"><h3>Materials per Language</h3><div id="chart-languages"></div></div>
  <div class="chart-box"><h3>Top Material Types (English)</h3><div id="chart-types"></div></div>
</section>

<section id="summary">
<table>
<thead><tr>
  <th data-col="language">Language</th>
  <th data-col="materials">Materials</th>
  <th data-col="descriptions">Descriptions</th>
</tr></thead>
<tbody>
{{range .Rows}}
<tr>
  <td>{{.LanguageCode}}</td>
  <td>{{.MaterialCount}}</td>
  <td>{{.DescriptionCount}}</td>
</tr>
{{end}}
</tbody>
</table>
</section>

<script>
var chartData = {{.ChartData}};

function svgEl(tag, attrs) {
  var el = document.createElementNS("http://www.w3.org/2000/svg", tag);
  for (var k in attrs) el.setAttribute(k, attrs[k]);
  return el;
}

var palette = ["#0d6efd","#6f42c1","#20c997","#fd7e14","#e83e8c","#17a2b8","#6c757d","#28a745","#ffc107","#dc3545"];

function markEmpty(id) {
  var c = document.getElementById(id);
  var d = document.createElement("div");
  d.className = "empty";
  d.textContent = "No data";
  c.appendChild(d);
}

function renderColumnChart(id, labels, values) {
  if (!labels.length) { markEmpty(id); return; }
  var c = document.getElementById(id);
  var max = Math.max.apply(null, values) || 1;
  var bw = Math.min(48, Math.floor(360 / labels.length) - 8);
  var svg = svgEl("svg", {width:"100%", viewBox:"0 0 400 220"});
  for (var i = 0; i < labels.length; i++) {
    var h = (values[i]/max)*170;
    var x = 20 + i*(bw+10);
    var bar = svgEl("rect", {x:x, y:190-h, width:bw, height:Math.max(h,2), fill:palette[i%palette.length], rx:3});
    var tip = svgEl("title", {});
    tip.textContent = labels[i] + ": " + values[i];
    bar.appendChild(tip);
    svg.appendChild(bar);
    var txt = svgEl("text", {x:x+bw/2, y:206, "text-anchor":"middle", fill:"currentColor", "font-size":"11"});
    txt.textContent = labels[i];
    svg.appendChild(txt);
    var val = svgEl("text", {x:x+bw/2, y:184-h, "text-anchor":"middle", fill:"currentColor", "font-size":"10"});
    val.textContent = values[i];
    svg.appendChild(val);
  }
  c.appendChild(svg);
}

function renderDonut(id, labels, values) {
  if (!labels.length) { markEmpty(id); return; }
  var c = document.getElementById(id);
  var total = values.reduce(function(a,b){return a+b},0) || 1;
  var svg = svgEl("svg", {width:"100%", viewBox:"0 0 420 220"});
  var cx=100, cy=105, r=80, angle=-Math.PI/2;
  if (values.length === 1) {
    var full = svgEl("circle", {cx:cx, cy:cy, r:r, fill:palette[0]});
    var t0 = svgEl("title", {});
    t0.textContent = labels[0] + ": " + values[0];
    full.appendChild(t0);
    svg.appendChild(full);
  } else {
    for (var i = 0; i < values.length; i++) {
      var slice = (values[i]/total)*Math.PI*2;
      if (values[i] === 0) continue;
      var x1=cx+r*Math.cos(angle), y1=cy+r*Math.sin(angle);
      angle += slice;
      var x2=cx+r*Math.cos(angle), y2=cy+r*Math.sin(angle);
      var large = slice > Math.PI ? 1 : 0;
      var d = "M"+cx+","+cy+" L"+x1+","+y1+" A"+r+","+r+" 0 "+large+",1 "+x2+","+y2+" Z";
      var seg = svgEl("path", {d:d, fill:palette[i%palette.length]});
      var tip = svgEl("title", {});
      tip.textContent = labels[i] + ": " + values[i];
      seg.appendChild(tip);
      svg.appendChild(seg);
    }
  }
  svg.appendChild(svgEl("circle", {cx:cx, cy:cy, r:40, fill:"var(--card-bg)"}));
  for (var j = 0; j < labels.length; j++) {
    var ly = 16 + j*19;
    svg.appendChild(svgEl("rect", {x:210, y:ly-8, width:10, height:10, fill:palette[j%palette.length], rx:2}));
    var lt = svgEl("text", {x:226, y:ly+1, fill:"currentColor", "font-size":"11"});
    var lbl = labels[j].length > 22 ? labels[j].slice(0,20)+"..." : labels[j];
    lt.textContent = lbl + " (" + values[j] + ")";
    svg.appendChild(lt);
  }
  c.appendChild(svg);
}

renderColumnChart("chart-languages", chartData.langLabels, chartData.langValues);
renderDonut("chart-types", chartData.typeLabels, chartData.typeValues);

(function(){
  var headers = document.querySelectorAll("th[data-col]");
  var sortCol = "", sortAsc = true;
  for (var i = 0; i < headers.length; i++) {
    headers[i].addEventListener("click", (function(th){
      return function(){
        var col = th.dataset.col;
        if (sortCol === col) sortAsc = !sortAsc; else { sortCol = col; sortAsc = true; }
        var tbody = document.querySelector("tbody");
        var rows = Array.prototype.slice.call(tbody.querySelectorAll("tr"));
        var ci = Array.prototype.indexOf.call(th.parentNode.children, th);
        rows.sort(function(a,b){
          var av = a.children[ci].textContent, bv = b.children[ci].textContent;
          var an = parseFloat(av), bn = parseFloat(bv);
          if (!isNaN(an) && !isNaN(bn)) return sortAsc ? an-bn : bn-an;
          return sortAsc ? av.localeCompare(bv) : bv.localeCompare(av);
        });
        for (var k = 0; k < rows.length; k++) tbody.appendChild(rows[k]);
        document.querySelectorAll(".sort-arrow").forEach(function(e){e.remove();});
        var arrow = document.createElement("span");
        arrow.className = "sort-arrow";
        arrow.textContent = sortAsc ? " ▲" : " ▼";
        th.appendChild(arrow);
      };
    })(headers[i]));
  }
})();
</script>
</body>
</html>`

const errorTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Title}}</title>
<style>
body { font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, sans-serif; background: #fff; color: #1a1a2e; padding: 2rem; max-width: 800px; margin: 0 auto; }
h1 { font-size: 1.5rem; margin-bottom: 1rem; }
.error { background: #f8d7da; border: 1px solid #f5c2c7; color: #842029; border-radius: 8px; padding: 1rem; font-size: .9rem; }
</style>
</head>
<body>
<h1>{{.Title}}</h1>
<div class="error">{{.Message}}</div>
</body>
</html>`

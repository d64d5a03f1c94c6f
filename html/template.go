package html

const viewerTemplate = `<!DOCTYPE html>
<html lang="{{.Lang}}" dir="{{.Dir}}">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>{{.Title}}</title>
<style>
body { font-family: 'Amiri', 'Traditional Arabic', serif; background: #16213e; margin: 0; padding: 20px; line-height: 2; }
.container { max-width: 1200px; margin: 0 auto; background: #fff; border-radius: 16px; overflow: hidden; }
header { background: #0f3460; color: #fff; padding: 40px; text-align: center; }
header h1 { margin: 0 0 10px; font-size: 2.4em; }
.search { position: sticky; top: 0; padding: 24px 40px; background: #f8f9fa; border-bottom: 2px solid #e9ecef; display: flex; gap: 12px; }
#search { flex: 1; padding: 14px 20px; font-size: 1.1em; border: 2px solid #ddd; border-radius: 10px; font-family: inherit; }
#stats { padding: 0 40px; color: #0f3460; font-weight: bold; }
.content { padding: 30px 40px; display: grid; grid-template-columns: repeat(auto-fill, minmax(420px, 1fr)); gap: 24px; }
.card { border: 2px solid #e9ecef; border-radius: 14px; padding: 24px; }
.card h2 { margin: 0 0 12px; color: #0f3460; border-bottom: 3px solid #0f3460; }
.card.hidden { display: none; }
.empty { color: #999; }
</style>
</head>
<body>
<div class="container">
<header>
<h1>{{.Title}}</h1>
{{with .Subtitle}}<p>{{.}}</p>{{end}}
</header>
<div class="search">
<input type="text" id="search" placeholder="{{.Placeholder}}" autocomplete="off">
<button type="button" id="clear">×</button>
</div>
<p id="stats"><span id="shown">{{.Total}}</span> / {{.Total}}</p>
<div class="content" id="content">
{{- range .Cards}}
<article class="card" data-search="{{.Search}}">
<h2>{{.Label}}</h2>
{{- range .Paragraphs}}
<p>{{.}}</p>
{{- else}}
<p class="empty">…</p>
{{- end}}
</article>
{{- end}}
</div>
</div>
<script>
(function () {
  var input = document.getElementById('search');
  var cards = document.querySelectorAll('.card');
  var shown = document.getElementById('shown');
  function filter() {
    var q = input.value.trim().toLowerCase();
    var n = 0;
    cards.forEach(function (card) {
      var match = !q || card.dataset.search.indexOf(q) !== -1;
      card.classList.toggle('hidden', !match);
      if (match) { n++; }
    });
    shown.textContent = n;
  }
  input.addEventListener('input', filter);
  document.getElementById('clear').addEventListener('click', function () {
    input.value = '';
    filter();
  });
  document.addEventListener('keydown', function (e) {
    if (e.ctrlKey && e.key === 'k') { e.preventDefault(); input.focus(); }
  });
})();
</script>
</body>
</html>
`

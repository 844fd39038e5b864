package site

// indexTemplate is the landing page shell: hero, project filter, and
// certificate carousel.
const indexTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Meta.Title}}</title>
<meta name="description" content="{{.Meta.Description}}">
<meta name="author" content="{{.Meta.Author}}">
<meta property="og:title" content="{{.Meta.Title}}">
<meta property="og:description" content="{{.Meta.Description}}">
<link rel="stylesheet" href="style.css">
</head>
<body>
<header class="site-header">
  <h1>{{.Meta.Title}}</h1>
  {{if .Meta.Description}}<p class="tagline">{{.Meta.Description}}</p>{{end}}
</header>

<main>
<section id="projects">
  <h2>Projects</h2>
  <div class="filter-bar">
    <input type="search" id="project-search" placeholder="Search projects…" autocomplete="off">
    <div class="tag-chips">
      <button class="chip active" data-tag="">All</button>
      {{range .Tags}}<button class="chip" data-tag="{{.}}">{{.}}</button>{{end}}
    </div>
  </div>

  <div class="project-grid">
    {{range .Projects}}
    <article class="project-card" data-title="{{.Title}}" data-description="{{.Description}}" data-tags="{{range .Tags}}{{.}} {{end}}">
      {{if .HeroImage}}<a href="{{.Href}}"><img class="hero" src="{{.HeroImage}}" alt="{{.Title}}" loading="lazy"></a>{{end}}
      <h3><a href="{{.Href}}">{{.Title}}</a></h3>
      <p>{{.Description}}</p>
      <div class="card-meta">
        <time>{{.DateText}}</time>
        {{range .Tags}}<span class="tag">{{.}}</span>{{end}}
      </div>
    </article>
    {{end}}
  </div>
  <p id="no-results" class="empty-state" hidden>No projects match your search.</p>
</section>

{{if .Carousel}}
<section id="certificates">
  <h2>Certificates</h2>
  <div class="carousel" id="cert-carousel">
    <div class="carousel-stage">
      {{range .Carousel.Cards}}
      <div class="cert-card{{if .Active}} active{{end}}" data-index="{{.Index}}"
           style="transform: {{.Transform}}; opacity: {{.Opacity}}; z-index: {{.ZIndex}};{{if .Hidden}} display: none;{{end}}">
        {{if .Image}}<img src="{{.Image}}" alt="{{.Title}}">{{end}}
        <h3>{{.Title}}</h3>
        <p class="issuer">{{.Issuer}} · {{.Date}}</p>
        {{if .Description}}<p>{{.Description}}</p>{{end}}
        {{if .Link}}<a class="verify" href="{{.Link}}" rel="noopener">Verify</a>{{end}}
      </div>
      {{end}}
    </div>
    <button class="carousel-nav prev" aria-label="Previous certificate">&#8249;</button>
    <button class="carousel-nav next" aria-label="Next certificate">&#8250;</button>
  </div>
</section>
{{end}}
</main>

<footer class="site-footer">
  {{if .Meta.Author}}<p>&copy; {{.Meta.Author}}</p>{{end}}
</footer>
<script src="script.js"></script>
</body>
</html>
`

// projectTemplate is the detail page for a single project.
const projectTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Project.Title}} — {{.Meta.Title}}</title>
<meta name="description" content="{{.Project.Description}}">
<meta property="og:title" content="{{.Project.Title}}">
<meta property="og:description" content="{{.Project.Description}}">
{{if .Project.OGImage}}<meta property="og:image" content="{{.Project.OGImage}}">{{end}}
<link rel="stylesheet" href="../style.css">
</head>
<body>
<header class="site-header">
  <a class="back" href="../index.html">&larr; {{.Meta.Title}}</a>
</header>

<main>
<article class="project-page">
  <h1>{{.Project.Title}}</h1>
  <div class="card-meta">
    <time>{{.DateText}}</time>
    {{range .Project.Tags}}<span class="tag">{{.}}</span>{{end}}
  </div>
  {{if .Project.HeroImage}}<img class="hero" src="{{.Project.HeroImage}}" alt="{{.Project.Title}}">{{end}}
  <div class="page-content">{{.Body}}</div>
  <div class="project-links">
    {{if .Project.GitHubURL}}<a href="{{.Project.GitHubURL}}" rel="noopener">Source</a>{{end}}
    {{if .Project.LiveURL}}<a href="{{.Project.LiveURL}}" rel="noopener">Live</a>{{end}}
  </div>
</article>
</main>
<script src="../script.js"></script>
</body>
</html>
`

// cssContent is the site stylesheet.
const cssContent = `:root {
  --bg: #0f1115;
  --fg: #e6e6e6;
  --muted: #9aa0a6;
  --accent: #4f9cf9;
  --card: #181b22;
}
* { box-sizing: border-box; }
body {
  margin: 0;
  font-family: -apple-system, "Segoe UI", Roboto, sans-serif;
  background: var(--bg);
  color: var(--fg);
  line-height: 1.6;
}
main { max-width: 960px; margin: 0 auto; padding: 0 1rem 4rem; }
a { color: var(--accent); text-decoration: none; }
.site-header { padding: 3rem 1rem 1rem; text-align: center; }
.site-header .back { display: inline-block; padding: 0.5rem 0; }
.tagline { color: var(--muted); }

.filter-bar { margin: 1rem 0; }
#project-search {
  width: 100%;
  padding: 0.6rem 0.9rem;
  border-radius: 8px;
  border: 1px solid #2a2e37;
  background: var(--card);
  color: var(--fg);
}
.tag-chips { margin-top: 0.6rem; display: flex; flex-wrap: wrap; gap: 0.4rem; }
.chip {
  padding: 0.25rem 0.8rem;
  border-radius: 999px;
  border: 1px solid #2a2e37;
  background: transparent;
  color: var(--muted);
  cursor: pointer;
}
.chip.active { background: var(--accent); color: #fff; border-color: var(--accent); }

.project-grid {
  display: grid;
  grid-template-columns: repeat(auto-fill, minmax(280px, 1fr));
  gap: 1rem;
}
.project-card {
  background: var(--card);
  border-radius: 12px;
  padding: 1rem;
  transition: opacity 0.25s ease;
}
.project-card img.hero { width: 100%; border-radius: 8px; opacity: 0; transition: opacity 0.4s ease; }
.project-card img.hero.loaded { opacity: 1; }
.card-meta { display: flex; flex-wrap: wrap; gap: 0.4rem; color: var(--muted); font-size: 0.85rem; }
.tag { background: #222732; border-radius: 4px; padding: 0 0.4rem; }
.empty-state { text-align: center; color: var(--muted); padding: 2rem; }

.carousel { position: relative; height: 380px; perspective: 1000px; }
.carousel-stage { position: relative; height: 100%; transform-style: preserve-3d; }
.cert-card {
  position: absolute;
  left: 50%;
  top: 10%;
  width: 280px;
  margin-left: -140px;
  background: var(--card);
  border-radius: 12px;
  padding: 1rem;
  text-align: center;
  transition: transform 0.45s ease, opacity 0.45s ease;
  cursor: grab;
  user-select: none;
}
.cert-card img { max-width: 100%; border-radius: 8px; pointer-events: none; }
.cert-card .issuer { color: var(--muted); font-size: 0.85rem; }
.carousel-nav {
  position: absolute;
  top: 50%;
  transform: translateY(-50%);
  background: var(--card);
  color: var(--fg);
  border: 1px solid #2a2e37;
  border-radius: 50%;
  width: 2.4rem;
  height: 2.4rem;
  font-size: 1.2rem;
  cursor: pointer;
  z-index: 200;
}
.carousel-nav.prev { left: 0; }
.carousel-nav.next { right: 0; }

.page-content pre { background: #12151c; padding: 1rem; border-radius: 8px; overflow-x: auto; }
.project-links { display: flex; gap: 1rem; margin-top: 1.5rem; }
.site-footer { text-align: center; color: var(--muted); padding: 2rem; }
`

// jsContent is the page script: the client-side project filter, the
// coverflow carousel runtime (mirroring the geometry in carousel.json),
// hero image fade-in, and the dev-server live-reload hook.
const jsContent = `(function () {
  'use strict';

  // --- project filter -----------------------------------------------------
  var search = document.getElementById('project-search');
  var chips = Array.prototype.slice.call(document.querySelectorAll('.chip'));
  var cards = Array.prototype.slice.call(document.querySelectorAll('.project-card'));
  var empty = document.getElementById('no-results');
  var activeTag = '';

  function applyFilter() {
    var q = (search ? search.value : '').toLowerCase();
    var shown = 0;
    cards.forEach(function (card) {
      var haystack = (card.dataset.title + ' ' + card.dataset.description).toLowerCase();
      var tags = card.dataset.tags.trim().split(/\s+/);
      var ok = (q === '' || haystack.indexOf(q) !== -1) &&
               (activeTag === '' || tags.indexOf(activeTag) !== -1);
      card.hidden = !ok;
      if (ok) shown++;
    });
    if (empty) empty.hidden = shown !== 0;
  }

  if (search) search.addEventListener('input', applyFilter);
  chips.forEach(function (chip) {
    chip.addEventListener('click', function () {
      chips.forEach(function (c) { c.classList.remove('active'); });
      chip.classList.add('active');
      activeTag = chip.dataset.tag;
      applyFilter();
    });
  });

  // --- hero image fade-in -------------------------------------------------
  document.querySelectorAll('img.hero').forEach(function (img) {
    if (img.complete) { img.classList.add('loaded'); return; }
    img.addEventListener('load', function () { img.classList.add('loaded'); });
  });

  // --- certificate carousel -----------------------------------------------
  var carousel = document.getElementById('cert-carousel');
  if (carousel) {
    fetch('carousel.json').then(function (r) { return r.json(); }).then(function (model) {
      var cardEls = Array.prototype.slice.call(carousel.querySelectorAll('.cert-card'));
      var n = cardEls.length;
      if (n === 0) return;
      var active = 0;

      function diffFor(i) {
        var diff = i - active;
        if (diff > n / 2) diff -= n;
        else if (diff < -n / 2) diff += n;
        return diff;
      }

      function layout() {
        cardEls.forEach(function (el, i) {
          var diff = diffFor(i);
          var abs = Math.abs(diff);
          var sign = diff > 0 ? 1 : diff < 0 ? -1 : 0;
          el.style.transform = 'translateX(' + diff * model.stepOffsetX + 'px)' +
            ' translateZ(' + -abs * model.stepDepth + 'px)' +
            ' rotateY(' + sign * model.rotationDeg + 'deg)';
          el.style.opacity = Math.max(1 - model.opacityFade * abs, 0);
          el.style.zIndex = model.baseZIndex - abs;
          el.style.display = abs <= model.visibleWindow ? '' : 'none';
          el.classList.toggle('active', diff === 0);
        });
      }

      function next() { active = (active + 1) % n; layout(); }
      function prev() { active = (active - 1 + n) % n; layout(); }

      carousel.querySelector('.next').addEventListener('click', next);
      carousel.querySelector('.prev').addEventListener('click', prev);

      // Drag handling: a swipe past the threshold advances the ring;
      // a click that ends a drag must not also jump.
      var dragging = false, wasDrag = false, startX = 0, lastX = 0;

      function pointerDown(x) { dragging = true; wasDrag = false; startX = lastX = x; }
      function pointerMove(x) {
        if (!dragging) return;
        lastX = x;
        if (Math.abs(lastX - startX) > model.swipeThreshold) wasDrag = true;
      }
      function pointerUp() {
        if (!dragging) return;
        dragging = false;
        var delta = lastX - startX;
        if (delta < -model.swipeThreshold) next();
        else if (delta > model.swipeThreshold) prev();
      }

      carousel.addEventListener('mousedown', function (e) { pointerDown(e.clientX); });
      window.addEventListener('mousemove', function (e) { pointerMove(e.clientX); });
      window.addEventListener('mouseup', pointerUp);
      carousel.addEventListener('touchstart', function (e) { pointerDown(e.touches[0].clientX); }, { passive: true });
      carousel.addEventListener('touchmove', function (e) { pointerMove(e.touches[0].clientX); }, { passive: true });
      carousel.addEventListener('touchend', pointerUp);

      cardEls.forEach(function (el, i) {
        el.addEventListener('click', function () {
          if (wasDrag) return;
          active = i;
          layout();
        });
      });
    });
  }

  // --- live reload (dev server only) --------------------------------------
  if (location.protocol !== 'file:') {
    try {
      var ws = new WebSocket((location.protocol === 'https:' ? 'wss://' : 'ws://') + location.host + '/ws');
      ws.onmessage = function (e) { if (e.data === 'reload') location.reload(); };
    } catch (err) { /* static hosting: no reload channel */ }
  }
})();
`

package showcase

// The showcase page is rendered with html/template: one template per
// card, one per contest panel, and the outer document. Context-aware
// escaping covers everything the GitHub API hands us (titles, bodies,
// URLs, logins).

const cardTemplate = `{{define "card"}}
    <article class="group relative bg-white dark:bg-[#1F2937] rounded-2xl shadow-sm border
                    border-[#E5E5E5] dark:border-gray-700 overflow-hidden
                    flex flex-col hover:shadow-md transition-shadow{{if .Winner}} ring-2 ring-amber-400 ring-offset-2 dark:ring-offset-[#111827]{{end}}"
             data-thumbs="{{.Thumbs}}"
             data-total-reactions="{{.TotalReactions}}"
             data-issue-url="{{.IssueURL}}"{{if .Winner}} data-winner="true"{{end}}
             aria-label="Contest submission: {{.Title}}">
      {{if .Winner}}<div class="absolute top-2 left-2 z-10 flex items-center gap-1.5 bg-amber-400 text-amber-900 text-xs font-bold px-2.5 py-1 rounded-full shadow-md pointer-events-none"><i class="fa-solid fa-trophy" aria-hidden="true"></i> Winner</div>{{end}}
      {{if .PreviewURL}}<a href="{{.IssueURL}}" target="_blank" rel="noopener"
         class="block overflow-hidden aspect-square bg-gray-100 dark:bg-gray-700">
        <img src="{{.PreviewURL}}" alt="{{.Title}} preview" loading="lazy"
             class="w-full h-full object-cover transition-transform duration-300 group-hover:scale-105" />
      </a>{{else}}<a href="{{.IssueURL}}" target="_blank" rel="noopener"
         class="flex items-center justify-center aspect-square bg-gray-100 dark:bg-gray-700 text-gray-400">
        <i class="fa-solid fa-image text-4xl" aria-hidden="true"></i>
      </a>{{end}}
      <div class="p-5 flex flex-col gap-3 flex-1">
        <div class="flex items-center justify-between gap-2 flex-wrap">
          <span class="text-xs font-medium px-2 py-0.5 rounded-full {{.CategoryClass}}">{{.Category}}</span>
          <span class="text-xs text-gray-400 dark:text-gray-500">#{{.Number}} · {{.Created}}</span>
        </div>
        <h2 class="text-base font-semibold text-gray-900 dark:text-gray-100 leading-snug">
          <a href="{{.IssueURL}}" target="_blank" rel="noopener"
             class="hover:text-[#E10101] transition-colors">{{.Title}}</a>
        </h2>
        <p class="text-sm text-gray-600 dark:text-gray-300 flex-1">{{if .Description}}{{.Description}}{{else}}No description provided.{{end}}</p>
        <div class="flex items-center gap-2 text-sm text-gray-500 dark:text-gray-400">
          {{if .AuthorAvatar}}<img src="{{.AuthorAvatar}}" alt="" class="w-6 h-6 rounded-full" aria-hidden="true" />{{else}}<i class="fa-solid fa-user-circle text-lg" aria-hidden="true"></i>{{end}}
          <a href="{{.AuthorURL}}" target="_blank" rel="noopener"
             class="text-[#E10101] hover:underline font-medium">{{.AuthorLogin}}</a>
        </div>
        {{if .Comment}}<div class="flex items-start gap-1.5 text-xs text-gray-400 dark:text-gray-500">
          {{if .Comment.Avatar}}<img src="{{.Comment.Avatar}}" alt="{{.Comment.Login}}'s avatar" class="w-5 h-5 rounded-full shrink-0" />{{else}}<i class="fa-solid fa-user-circle text-base shrink-0" aria-hidden="true"></i>{{end}}
          <span><a href="{{.IssueURL}}" target="_blank" rel="noopener"
            class="hover:text-[#E10101] transition-colors">{{.Comment.CountLabel}}</a><a href="{{.Comment.URL}}" target="_blank" rel="noopener"
            class="font-medium text-gray-500 dark:text-gray-400 hover:text-[#E10101] transition-colors">{{.Comment.Login}}</a>: {{.Comment.Body}}</span>
        </div>{{else}}<a href="{{.IssueURL}}" target="_blank" rel="noopener"
          class="inline-flex items-center gap-1.5 text-xs text-gray-400 dark:text-gray-500 hover:text-[#E10101] dark:hover:text-[#E10101] transition-colors"
          aria-label="Be the first to comment on GitHub">
          <i class="fa-regular fa-comment" aria-hidden="true"></i>Be the first to comment!</a>{{end}}
        <div class="flex items-center justify-between gap-2 flex-wrap pt-2
                    border-t border-[#E5E5E5] dark:border-gray-700">
          <div class="flex items-center gap-1 flex-wrap" aria-label="Reactions">
            {{if .Pills}}{{range .Pills}}{{if .Thumbs}}<button type="button" class="inline-flex items-center gap-1 text-sm bg-gray-100 dark:bg-gray-700 text-gray-700 dark:text-gray-200 rounded-full px-2 py-0.5 hover:bg-red-100 dark:hover:bg-red-900/30 hover:text-[#E10101] transition-colors cursor-pointer" data-thumbs-btn aria-label="Thumbs up this design on GitHub">{{.Emoji}} <span>{{.Count}}</span></button>{{else}}<span class="inline-flex items-center gap-1 text-sm bg-gray-100 dark:bg-gray-700 text-gray-700 dark:text-gray-200 rounded-full px-2 py-0.5">{{.Emoji}} <span>{{.Count}}</span></span>{{end}}{{end}}{{else}}<a href="{{.IssueURL}}" target="_blank" rel="noopener" class="inline-flex items-center gap-1.5 text-xs text-gray-400 dark:text-gray-500 hover:text-[#E10101] dark:hover:text-[#E10101] transition-colors" aria-label="Be the first to react on GitHub"><i class="fa-regular fa-face-smile" aria-hidden="true"></i>Be the first to react!</a>{{end}}
          </div>
          <div class="flex items-center gap-3">
            {{if .DesignURL}}<a href="{{.DesignURL}}" target="_blank" rel="noopener"
               class="text-[#E10101] hover:underline text-sm inline-flex items-center gap-1">
              <i class="fa-solid fa-arrow-up-right-from-square" aria-hidden="true"></i>
              View Design</a>{{end}}
            <a href="{{.IssueURL}}" target="_blank" rel="noopener"
               class="inline-flex items-center gap-1 text-sm font-medium
                      border border-[#E10101] text-[#E10101] rounded-md px-3 py-1
                      hover:bg-[#E10101] hover:text-white transition-colors"
               aria-label="View issue #{{.Number}}">
              <i class="fa-brands fa-github" aria-hidden="true"></i> Issue
            </a>
          </div>
        </div>
      </div>
    </article>
{{end}}`

const sectionTemplate = `{{define "section"}}
    <div id="contest-{{.Contest.ID}}" class="contest-panel" role="tabpanel" aria-labelledby="tab-{{.Contest.ID}}">

      <div class="mb-6 p-5 bg-white dark:bg-[#1F2937] rounded-xl border border-[#E5E5E5] dark:border-gray-700">
        <div class="flex flex-col sm:flex-row items-start sm:items-center justify-between gap-4">
          <div>
            <h2 class="text-xl font-bold text-gray-900 dark:text-gray-100 flex items-center gap-2">
              <i class="{{.Contest.Icon}} text-[#E10101]" aria-hidden="true"></i>
              {{.Contest.Name}}
            </h2>
            <p class="mt-1 text-sm text-gray-500 dark:text-gray-400">{{.Contest.Description}}</p>
            <div class="mt-2 flex items-center gap-4 text-sm font-medium flex-wrap">
              <span class="inline-flex items-center gap-1 text-[#E10101]">
                <i class="fa-solid fa-trophy" aria-hidden="true"></i> {{.Contest.Prize}} prize
              </span>
              <span class="inline-flex items-center gap-1 text-[#E10101]">
                <i class="fa-solid fa-calendar-day" aria-hidden="true"></i> Ends {{.Contest.DeadlineDisplay}}
              </span>
              <span class="inline-flex items-center gap-1 text-gray-500 dark:text-gray-400">
                <i class="fa-solid fa-images" aria-hidden="true"></i>
                {{.Total}} submission{{plural .Total}}
              </span>
            </div>
          </div>
          <a href="{{.SubmitURL}}"
             target="_blank" rel="noopener"
             class="inline-flex items-center gap-2 bg-[#E10101] hover:bg-red-700
                    text-white text-sm font-semibold px-4 py-2 rounded-md
                    transition-colors shrink-0">
            <i class="fa-solid fa-plus" aria-hidden="true"></i>
            Add Entry
          </a>
        </div>
      </div>
      {{if .WinnerCount}}
      <div class="mb-6 bg-amber-50 dark:bg-amber-900/20 border border-amber-300 dark:border-amber-600
                  rounded-xl px-5 py-4 flex items-center gap-3">
        <i class="fa-solid fa-trophy text-2xl text-amber-500" aria-hidden="true"></i>
        <div>
          <p class="font-semibold text-amber-800 dark:text-amber-300">Winner{{plural .WinnerCount}} Selected!</p>
          <p class="text-sm text-amber-700 dark:text-amber-400">
            {{.WinnerCount}} winning design{{plural .WinnerCount}} {{if eq .WinnerCount 1}}is{{else}}are{{end}} highlighted below.
          </p>
        </div>
      </div>
      {{end}}
      <div class="flex items-center gap-3 flex-wrap mb-6">
        <span class="text-sm text-gray-500 dark:text-gray-400 mr-1">Sort:</span>
        <button id="sort-thumbs-{{.Contest.ID}}" type="button"
                class="inline-flex items-center gap-2 border border-gray-300 dark:border-gray-600
                       text-gray-700 dark:text-gray-200 hover:border-[#E10101] hover:text-[#E10101]
                       text-sm font-semibold px-4 py-2 rounded-md transition-colors"
                aria-pressed="false"
                data-sort="thumbs" data-contest="{{.Contest.ID}}">
          <i class="fa-solid fa-arrow-down-wide-short" aria-hidden="true"></i>
          By 👍
        </button>
        <button id="sort-reactions-{{.Contest.ID}}" type="button"
                class="inline-flex items-center gap-2 border border-gray-300 dark:border-gray-600
                       text-gray-700 dark:text-gray-200 hover:border-[#E10101] hover:text-[#E10101]
                       text-sm font-semibold px-4 py-2 rounded-md transition-colors"
                aria-pressed="false"
                data-sort="reactions" data-contest="{{.Contest.ID}}">
          <i class="fa-solid fa-arrow-down-wide-short" aria-hidden="true"></i>
          By all reactions
        </button>
      </div>

      <div id="cards-grid-{{.Contest.ID}}"
           class="grid grid-cols-1 sm:grid-cols-2 lg:grid-cols-3 gap-6">
        {{if .Cards}}{{range .Cards}}{{template "card" .}}{{end}}{{else}}<div class="col-span-full text-center py-20 text-gray-500 dark:text-gray-400">
          <i class="{{.Contest.Icon}} text-5xl mb-4 block text-[#E10101]" aria-hidden="true"></i>
          <p class="text-lg font-medium">No submissions yet — be the first!</p>
          <p class="mt-2 text-sm">Click <strong>Add Entry</strong> to get started.</p>
        </div>{{end}}
      </div>

    </div>
{{end}}`

const pageTemplate = `{{define "page"}}<!DOCTYPE html>
<html lang="en" class="scroll-smooth">
<head>
  <meta charset="UTF-8" />
  <meta name="viewport" content="width=device-width, initial-scale=1.0" />
  <meta name="description" content="BLT Design Contest — community showcase of design submissions. Rate your favourites with a thumbs up!" />
  <title>BLT Design Contest — Showcase</title>

  <script src="https://cdn.tailwindcss.com"></script>
  <script>
    tailwind.config = {
      darkMode: 'class',
      theme: {
        extend: {
          colors: {
            brand: '#E10101',
          },
        },
      },
    };
  </script>

  <link rel="stylesheet"
        href="https://cdnjs.cloudflare.com/ajax/libs/font-awesome/6.5.1/css/all.min.css"
        integrity="sha512-DTOQO9RWCH3ppGqcWaEA1BIZOC6xxalwEsw9c2QQeAIftl+Vegovlnee1c9QX4TctnWMn13TZye+giMm8e2LwA=="
        crossorigin="anonymous" referrerpolicy="no-referrer" />

  <style>
    :root { --brand: #E10101; }
    *:focus-visible {
      outline: 2px solid var(--brand);
      outline-offset: 2px;
    }
  </style>
</head>

<body class="bg-gray-50 dark:bg-[#111827] text-gray-900 dark:text-gray-100 min-h-screen
             flex flex-col font-sans antialiased">

  <a href="#showcase"
     class="sr-only focus:not-sr-only focus:fixed focus:top-2 focus:left-2
            focus:z-50 focus:px-4 focus:py-2 focus:bg-[#E10101] focus:text-white
            focus:rounded-md focus:font-medium">
    Skip to content
  </a>

  <header class="bg-white dark:bg-[#1F2937] border-b border-[#E5E5E5] dark:border-gray-700
                 sticky top-0 z-40">
    <div class="max-w-7xl mx-auto px-4 sm:px-6 lg:px-8">
      <nav class="flex items-center justify-between h-16 gap-4" aria-label="Primary navigation">

        <a href="/" class="flex items-center gap-2 shrink-0 group" aria-label="BLT Design Contest home">
          <span class="inline-flex items-center justify-center w-8 h-8 rounded-md
                       bg-[#E10101] text-white font-black text-sm select-none">BLT</span>
          <span class="font-semibold text-gray-900 dark:text-gray-100 hidden sm:block">
            Design Contest
          </span>
        </a>

        <div class="hidden md:flex items-center gap-6 text-sm font-medium">
          <a href="#showcase"
             class="text-gray-600 dark:text-gray-300 hover:text-[#E10101] transition-colors">
            Showcase
          </a>
          <a href="#how-it-works"
             class="text-gray-600 dark:text-gray-300 hover:text-[#E10101] transition-colors">
            How it works
          </a>
          <a href="https://github.com/{{.Repo}}" target="_blank" rel="noopener"
             class="text-gray-600 dark:text-gray-300 hover:text-[#E10101] transition-colors
                    inline-flex items-center gap-1">
            <i class="fa-brands fa-github" aria-hidden="true"></i> GitHub
          </a>
        </div>

        <a href="{{.FirstSubmitURL}}"
           target="_blank" rel="noopener"
           class="inline-flex items-center gap-2 bg-[#E10101] hover:bg-red-700
                  text-white text-sm font-semibold px-4 py-2 rounded-md
                  transition-colors shrink-0">
          <i class="fa-solid fa-plus" aria-hidden="true"></i>
          <span>Submit Design</span>
        </a>

        <button id="theme-toggle" type="button"
                class="p-2 rounded-md text-gray-500 dark:text-gray-400
                       hover:bg-gray-100 dark:hover:bg-gray-700 transition-colors"
                aria-label="Toggle dark mode">
          <i class="fa-solid fa-moon dark:hidden" aria-hidden="true"></i>
          <i class="fa-solid fa-sun hidden dark:inline" aria-hidden="true"></i>
        </button>

      </nav>
    </div>
  </header>

  <section class="bg-white dark:bg-[#1F2937] border-b border-[#E5E5E5] dark:border-gray-700">
    <div class="max-w-7xl mx-auto px-4 sm:px-6 lg:px-8 py-16 text-center">
      <span class="inline-block mb-4 bg-[#feeae9] dark:bg-red-900/30 text-[#E10101]
                   text-xs font-semibold px-3 py-1 rounded-full uppercase tracking-wide">
        Open Design Contests
      </span>
      <h1 class="text-4xl sm:text-5xl font-black text-gray-900 dark:text-gray-50 leading-tight mb-4">
        BLT Design Showcase
      </h1>
      <p class="max-w-2xl mx-auto text-lg text-gray-600 dark:text-gray-300 mb-4">
        Community-driven design submissions for OWASP BLT.
        Browse entries, react with 👍 on GitHub, and submit your own work.
      </p>

      <div class="inline-flex flex-wrap items-center justify-center gap-4 mb-8
                  bg-[#feeae9] dark:bg-red-900/30 border border-[#E10101]/20
                  rounded-xl px-6 py-3 text-sm font-medium text-[#E10101]">
        <span class="inline-flex items-center gap-1.5">
          <i class="fa-solid fa-trophy" aria-hidden="true"></i>
          <strong>$25 prize</strong> per contest
        </span>
        <span class="hidden sm:block text-[#E10101]/40">|</span>
        <span class="inline-flex items-center gap-1.5">
          <i class="fa-solid fa-calendar-day" aria-hidden="true"></i>
          Contests end <strong>June 1, 2026</strong>
        </span>
      </div>

      <div class="flex items-center justify-center gap-4 flex-wrap">
        <a href="{{.FirstSubmitURL}}"
           target="_blank" rel="noopener"
           class="inline-flex items-center gap-2 bg-[#E10101] hover:bg-red-700
                  text-white font-semibold px-6 py-3 rounded-md transition-colors">
          <i class="fa-solid fa-pen-ruler" aria-hidden="true"></i>
          Submit Your Design
        </a>
        <a href="#showcase"
           class="inline-flex items-center gap-2 border border-[#E10101] text-[#E10101]
                  hover:bg-[#E10101] hover:text-white font-semibold px-6 py-3
                  rounded-md transition-colors">
          <i class="fa-solid fa-images" aria-hidden="true"></i>
          Browse Entries
        </a>
      </div>

      <div class="mt-12 grid grid-cols-2 sm:grid-cols-4 gap-6 max-w-2xl mx-auto
                  text-center text-sm text-gray-500 dark:text-gray-400">
        <div>
          <p class="text-3xl font-black text-[#E10101]">{{.TotalAll}}</p>
          <p>Submission{{plural .TotalAll}}</p>
        </div>
        <div>
          <p class="text-3xl font-black text-[#E10101]">{{len .Sections}}</p>
          <p>Contest{{plural (len .Sections)}}</p>
        </div>
        <div class="col-span-2 sm:col-span-1">
          <div id="countdown" class="flex justify-center gap-3 text-[#E10101]">
            <span class="flex flex-col items-center">
              <span id="cd-days" class="text-3xl font-black">--</span>
              <span class="text-xs">days</span>
            </span>
            <span class="text-3xl font-black leading-none self-start pt-1">:</span>
            <span class="flex flex-col items-center">
              <span id="cd-hours" class="text-3xl font-black">--</span>
              <span class="text-xs">hrs</span>
            </span>
            <span class="text-3xl font-black leading-none self-start pt-1">:</span>
            <span class="flex flex-col items-center">
              <span id="cd-mins" class="text-3xl font-black">--</span>
              <span class="text-xs">min</span>
            </span>
            <span class="text-3xl font-black leading-none self-start pt-1">:</span>
            <span class="flex flex-col items-center">
              <span id="cd-secs" class="text-3xl font-black">--</span>
              <span class="text-xs">sec</span>
            </span>
          </div>
          <p>Until Deadline</p>
        </div>
        <div class="col-span-2 sm:col-span-1">
          <p class="text-3xl font-black text-[#E10101]">∞</p>
          <p>Creativity</p>
        </div>
      </div>
    </div>
  </section>

  <section id="how-it-works" class="bg-gray-50 dark:bg-[#111827]">
    <div class="max-w-7xl mx-auto px-4 sm:px-6 lg:px-8 py-14">
      <h2 class="text-2xl font-bold text-center text-gray-900 dark:text-gray-100 mb-10">
        How it works
      </h2>
      <ol class="grid sm:grid-cols-3 gap-8" role="list">
        <li class="flex flex-col items-center text-center gap-3">
          <span class="w-12 h-12 rounded-full bg-[#feeae9] dark:bg-red-900/30 text-[#E10101]
                       flex items-center justify-center text-xl font-black">1</span>
          <h3 class="font-semibold text-gray-900 dark:text-gray-100">Submit via GitHub</h3>
          <p class="text-sm text-gray-500 dark:text-gray-400">
            Open a new issue using the <em>Design Submission</em> template.
            Upload your preview image, add a description and a link to your design.
          </p>
        </li>
        <li class="flex flex-col items-center text-center gap-3">
          <span class="w-12 h-12 rounded-full bg-[#feeae9] dark:bg-red-900/30 text-[#E10101]
                       flex items-center justify-center text-xl font-black">2</span>
          <h3 class="font-semibold text-gray-900 dark:text-gray-100">Community rates it</h3>
          <p class="text-sm text-gray-500 dark:text-gray-400">
            Anyone can leave a 👍 reaction on your issue to show appreciation.
            The showcase automatically reflects the current reaction counts.
          </p>
        </li>
        <li class="flex flex-col items-center text-center gap-3">
          <span class="w-12 h-12 rounded-full bg-[#feeae9] dark:bg-red-900/30 text-[#E10101]
                       flex items-center justify-center text-xl font-black">3</span>
          <h3 class="font-semibold text-gray-900 dark:text-gray-100">Showcase updates</h3>
          <p class="text-sm text-gray-500 dark:text-gray-400">
            GitHub Actions rebuilds this page whenever a submission issue is
            opened or edited, keeping the showcase always up to date.
          </p>
        </li>
      </ol>
    </div>
  </section>

  <main id="showcase" class="flex-1">
    <div class="max-w-7xl mx-auto px-4 sm:px-6 lg:px-8 py-12">

      <p class="text-xs text-gray-400 dark:text-gray-500 mb-4 text-right">
        Last updated {{.LastUpdated}}
      </p>

      <div class="overflow-x-auto -mx-4 px-4 sm:mx-0 sm:px-0">
        <div class="border-b border-[#E5E5E5] dark:border-gray-700 mb-8 flex gap-1 min-w-max"
             role="tablist" aria-label="Design contests">
          {{range .Sections}}<button role="tab" id="tab-{{.Contest.ID}}" data-tab="{{.Contest.ID}}" aria-selected="false" aria-controls="contest-{{.Contest.ID}}" class="contest-tab inline-flex items-center gap-2 px-4 py-3 text-sm font-medium border-b-2 border-transparent text-gray-600 dark:text-gray-300 hover:text-[#E10101] hover:border-[#E10101] transition-colors whitespace-nowrap"><i class="{{.Contest.Icon}}" aria-hidden="true"></i> {{.Contest.Name}} <span class="ml-1 text-xs bg-gray-100 dark:bg-gray-700 text-gray-500 dark:text-gray-400 rounded-full px-1.5 py-0.5">{{.Total}}</span></button>{{end}}
        </div>
      </div>

      {{range .Sections}}{{template "section" .}}{{end}}

    </div>
  </main>

  <footer class="bg-white dark:bg-[#1F2937] border-t border-[#E5E5E5] dark:border-gray-700">
    <div class="max-w-7xl mx-auto px-4 sm:px-6 lg:px-8 py-8
                flex flex-col sm:flex-row items-center justify-between gap-4 text-sm
                text-gray-500 dark:text-gray-400">
      <p>
        © {{.Year}}
        <a href="https://owasp.org/www-project-blt/" target="_blank" rel="noopener"
           class="text-[#E10101] hover:underline font-medium">OWASP BLT</a>.
        Content licensed under
        <a href="https://creativecommons.org/licenses/by/4.0/" target="_blank" rel="noopener"
           class="text-[#E10101] hover:underline">CC BY 4.0</a>.
      </p>
      <div class="flex items-center gap-4">
        <a href="https://github.com/{{.Repo}}" target="_blank" rel="noopener"
           class="hover:text-[#E10101] transition-colors inline-flex items-center gap-1">
          <i class="fa-brands fa-github" aria-hidden="true"></i> Source
        </a>
        <a href="https://owasp.org/www-project-blt/" target="_blank" rel="noopener"
           class="hover:text-[#E10101] transition-colors">OWASP BLT</a>
      </div>
    </div>
  </footer>

  <script>
    // Dark-mode toggle
    const toggle = document.getElementById('theme-toggle');
    const html = document.documentElement;

    if (localStorage.theme === 'dark' ||
        (!('theme' in localStorage) &&
         window.matchMedia('(prefers-color-scheme: dark)').matches)) {
      html.classList.add('dark');
    }

    toggle.addEventListener('click', () => {
      html.classList.toggle('dark');
      localStorage.theme = html.classList.contains('dark') ? 'dark' : 'light';
    });

    // Sort buttons work independently per contest panel
    const sortState = {};

    function resetSortBtn(btn) {
      if (!btn) return;
      btn.setAttribute('aria-pressed', 'false');
      btn.classList.remove('border-[#E10101]', 'text-[#E10101]');
      btn.classList.add('border-gray-300', 'dark:border-gray-600', 'text-gray-700', 'dark:text-gray-200');
    }

    document.querySelectorAll('[data-sort][data-contest]').forEach(btn => {
      btn.addEventListener('click', () => {
        const cid = btn.dataset.contest;
        const sortType = btn.dataset.sort;
        const grid = document.getElementById('cards-grid-' + cid);
        if (!grid) return;

        if (!sortState[cid]) sortState[cid] = { thumbs: false, reactions: false, originalOrder: null };
        if (!sortState[cid].originalOrder) sortState[cid].originalOrder = Array.from(grid.children);

        const otherType = sortType === 'thumbs' ? 'reactions' : 'thumbs';
        const otherBtn = document.querySelector('[data-sort="' + otherType + '"][data-contest="' + cid + '"]');
        const isActive = sortState[cid][sortType];

        sortState[cid][sortType] = !isActive;
        sortState[cid][otherType] = false;
        resetSortBtn(otherBtn);

        btn.setAttribute('aria-pressed', String(!isActive));
        btn.classList.toggle('border-[#E10101]', !isActive);
        btn.classList.toggle('text-[#E10101]', !isActive);
        btn.classList.toggle('border-gray-300', isActive);
        btn.classList.toggle('dark:border-gray-600', isActive);
        btn.classList.toggle('text-gray-700', isActive);
        btn.classList.toggle('dark:text-gray-200', isActive);

        const dataKey = sortType === 'thumbs' ? 'thumbs' : 'totalReactions';
        // Winner cards stay pinned at the top; only non-winners are sorted.
        const allCards = [...sortState[cid].originalOrder];
        const winnerCards = allCards.filter(card => card.dataset.winner === 'true');
        const nonWinnerCards = allCards.filter(card => card.dataset.winner !== 'true');
        const sortedNonWinners = !isActive
          ? [...nonWinnerCards].sort((a, b) =>
              parseInt(b.dataset[dataKey] || '0', 10) - parseInt(a.dataset[dataKey] || '0', 10))
          : nonWinnerCards;
        const cards = [...winnerCards, ...sortedNonWinners];

        cards.forEach(card => grid.appendChild(card));
      });
    });

    // Thumbs-up click opens the GitHub issue so the user can react there
    document.addEventListener('click', (e) => {
      const btn = e.target.closest('[data-thumbs-btn]');
      if (!btn) return;
      const issueUrl = btn.closest('article')?.dataset.issueUrl;
      if (issueUrl) {
        window.open(issueUrl, '_blank', 'noopener,noreferrer');
      }
    });

    // Live-update reaction counts from the GitHub API on page load
    (async function () {
      const REACTION_LABELS = [
        ['+1',       '👍'],
        ['-1',       '👎'],
        ['laugh',    '😄'],
        ['hooray',   '🎉'],
        ['confused', '😕'],
        ['heart',    '❤️'],
        ['rocket',   '🚀'],
        ['eyes',     '👀'],
      ];
      const PILL = 'inline-flex items-center gap-1 text-sm bg-gray-100 dark:bg-gray-700 '
                 + 'text-gray-700 dark:text-gray-200 rounded-full px-2 py-0.5';
      const THUMBS_PILL = PILL + ' hover:bg-red-100 dark:hover:bg-red-900/30 '
                        + 'hover:text-[#E10101] transition-colors cursor-pointer';
      const ETAG_KEY   = 'bltDesignIssuesEtag';
      const CACHE_KEY  = 'bltDesignIssuesCache';
      const BASE_URL   = 'https://api.github.com/repos/{{.Repo}}/issues?state=open&per_page=100';
      const API_HEADERS = { 'Accept': 'application/vnd.github+json', 'X-GitHub-Api-Version': '2022-11-28' };

      const cards = Array.from(document.querySelectorAll('article[data-issue-url]'));
      if (!cards.length) return;

      let cachedEtag = null;
      let issues = null;
      try {
        cachedEtag = localStorage.getItem(ETAG_KEY);
        const raw = localStorage.getItem(CACHE_KEY);
        if (raw) issues = JSON.parse(raw);
      } catch (_) {}

      // Conditional request when we have a cached ETag: a 304 costs no rate limit
      try {
        const firstPageHeaders = cachedEtag
          ? { ...API_HEADERS, 'If-None-Match': cachedEtag }
          : { ...API_HEADERS };
        const resp = await fetch(BASE_URL + '&page=1', { headers: firstPageHeaders });

        if (resp.status === 304) {
          // Not modified, reuse cached issues
        } else if (resp.ok) {
          const allIssues = await resp.json();
          const newEtag = resp.headers.get('ETag');
          let page = 2;
          while (true) {
            const next = await fetch(BASE_URL + '&page=' + page, { headers: API_HEADERS });
            if (!next.ok) break;
            const batch = await next.json();
            if (!Array.isArray(batch) || !batch.length) break;
            allIssues.push(...batch);
            if (batch.length < 100) break;
            page++;
          }
          issues = allIssues;
          try {
            if (newEtag) localStorage.setItem(ETAG_KEY, newEtag);
            localStorage.setItem(CACHE_KEY, JSON.stringify(issues));
          } catch (_) {}
        } else {
          console.error('Failed to fetch live reaction counts:', resp.status, resp.statusText);
        }
      } catch (err) {
        console.error('Failed to fetch live reaction counts:', err);
      }

      if (!issues) return;

      const byUrl = {};
      for (const issue of issues) byUrl[issue.html_url] = issue.reactions || {};

      for (const card of cards) {
        const reactions = byUrl[card.dataset.issueUrl];
        if (!reactions) continue;

        const thumbsCount = parseInt(reactions['+1'], 10) || 0;
        card.dataset.thumbs = thumbsCount;
        const totalReactions = REACTION_LABELS.reduce((sum, [c]) => sum + (parseInt(reactions[c], 10) || 0), 0);
        card.dataset.totalReactions = totalReactions;

        const container = card.querySelector('[aria-label="Reactions"]');
        if (!container) continue;

        let html = '';
        let total = 0;
        for (const [content, emoji] of REACTION_LABELS) {
          const count = parseInt(reactions[content], 10) || 0;
          if (!count) continue;
          total++;
          if (content === '+1') {
            html += '<button type="button" class="' + THUMBS_PILL + '" data-thumbs-btn '
                  + 'aria-label="Thumbs up this design on GitHub">' + emoji + ' <span>' + count + '</span></button>';
          } else {
            html += '<span class="' + PILL + '">' + emoji + ' <span>' + count + '</span></span>';
          }
        }
        if (!total) {
          html = '<a href="' + card.dataset.issueUrl + '" target="_blank" rel="noopener" '
               + 'class="inline-flex items-center gap-1.5 text-xs text-gray-400 dark:text-gray-500 '
               + 'hover:text-[#E10101] dark:hover:text-[#E10101] transition-colors" '
               + 'aria-label="Be the first to react on GitHub">'
               + '<i class="fa-regular fa-face-smile" aria-hidden="true"></i>Be the first to react!</a>';
        }
        container.innerHTML = html;
      }
    })();

    // Contest tab navigation
    (function () {
      const tabs = document.querySelectorAll('[role="tab"][data-tab]');
      const panels = document.querySelectorAll('.contest-panel');

      function switchTab(targetId) {
        panels.forEach(panel => { panel.hidden = panel.id !== 'contest-' + targetId; });
        tabs.forEach(tab => {
          const isActive = tab.dataset.tab === targetId;
          tab.setAttribute('aria-selected', String(isActive));
          tab.classList.toggle('border-[#E10101]', isActive);
          tab.classList.toggle('text-[#E10101]', isActive);
          tab.classList.toggle('font-semibold', isActive);
          tab.classList.toggle('border-transparent', !isActive);
          tab.classList.toggle('text-gray-600', !isActive);
          tab.classList.toggle('dark:text-gray-300', !isActive);
        });
      }

      tabs.forEach(tab => { tab.addEventListener('click', () => switchTab(tab.dataset.tab)); });
      if (tabs.length) switchTab(tabs[0].dataset.tab);
    })();

    // Countdown timer to the nearest contest deadline
    (function () {
      const deadline = new Date('{{.EarliestDeadline}}').getTime();
      const els = {
        days:  document.getElementById('cd-days'),
        hours: document.getElementById('cd-hours'),
        mins:  document.getElementById('cd-mins'),
        secs:  document.getElementById('cd-secs'),
      };
      if (!els.days) return;
      function pad(n) { return String(n).padStart(2, '0'); }
      function tick() {
        const diff = deadline - Date.now();
        if (diff <= 0) {
          els.days.textContent = '00';
          els.hours.textContent = '00';
          els.mins.textContent  = '00';
          els.secs.textContent  = '00';
          clearInterval(intervalId);
          return;
        }
        const d = Math.floor(diff / 86400000);
        const h = Math.floor((diff % 86400000) / 3600000);
        const m = Math.floor((diff % 3600000)  /   60000);
        const s = Math.floor((diff %   60000)  /    1000);
        els.days.textContent  = pad(d);
        els.hours.textContent = pad(h);
        els.mins.textContent  = pad(m);
        els.secs.textContent  = pad(s);
      }
      tick();
      const intervalId = setInterval(tick, 1000);
    }())
  </script>
</body>
</html>
{{end}}`

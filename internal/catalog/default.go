package catalog

import "github.com/learnhubhq/docsearch/internal/domain"

// Default returns the built-in catalog covering the platform's tutorial
// pages and learning paths. Deployments can replace it with a YAML file via
// CATALOG_PATH.
func Default() *Catalog {
	c, err := New(defaultDocuments)
	if err != nil {
		// The built-in list is validated by tests; a failure here is a bug.
		panic(err)
	}
	return c
}

var defaultDocuments = []domain.Document{
	{
		Title:       "Python Introduction",
		Description: "What Python is, installing an interpreter, and running your first script.",
		Category:    domain.CategoryPython,
		Path:        "/docs/python/introduction",
		Icon:        domain.IconDoc,
	},
	{
		Title:       "Python Variables & Data Types",
		Description: "Variables, numbers, strings, lists, tuples, sets and dictionaries in Python.",
		Category:    domain.CategoryPython,
		Path:        "/docs/python/variables",
		Icon:        domain.IconDoc,
	},
	{
		Title:       "Python Control Flow",
		Description: "Conditionals, for and while loops, break, continue and comprehensions.",
		Category:    domain.CategoryPython,
		Path:        "/docs/python/control-flow",
		Icon:        domain.IconDoc,
	},
	{
		Title:       "Python Functions",
		Description: "Defining functions, arguments, return values, lambdas and scope rules.",
		Category:    domain.CategoryPython,
		Path:        "/docs/python/functions",
		Icon:        domain.IconDoc,
	},
	{
		Title:       "Python Classes & Objects",
		Description: "Object-oriented Python: classes, methods, inheritance and dunder methods.",
		Category:    domain.CategoryPython,
		Path:        "/docs/python/classes",
		Icon:        domain.IconDoc,
	},
	{
		Title:       "JavaScript Basics",
		Description: "Syntax, variables, types and operators for newcomers to JavaScript.",
		Category:    domain.CategoryJavaScript,
		Path:        "/docs/javascript/basics",
		Icon:        domain.IconDoc,
	},
	{
		Title:       "JavaScript Functions & Scope",
		Description: "Function declarations, arrow functions, closures and the this keyword.",
		Category:    domain.CategoryJavaScript,
		Path:        "/docs/javascript/functions",
		Icon:        domain.IconDoc,
	},
	{
		Title:       "JavaScript DOM Manipulation",
		Description: "Selecting elements, handling events and updating the page from script.",
		Category:    domain.CategoryJavaScript,
		Path:        "/docs/javascript/dom",
		Icon:        domain.IconDoc,
	},
	{
		Title:       "Async JavaScript",
		Description: "Callbacks, promises, async/await and fetching data from APIs.",
		Category:    domain.CategoryJavaScript,
		Path:        "/docs/javascript/async",
		Icon:        domain.IconDoc,
	},
	{
		Title:       "HTML Fundamentals",
		Description: "Document structure, elements, attributes, forms and semantic markup.",
		Category:    domain.CategoryHTML,
		Path:        "/docs/html/fundamentals",
		Icon:        domain.IconDoc,
	},
	{
		Title:       "HTML Forms & Inputs",
		Description: "Building accessible forms with inputs, labels, validation and submission.",
		Category:    domain.CategoryHTML,
		Path:        "/docs/html/forms",
		Icon:        domain.IconDoc,
	},
	{
		Title:       "CSS Fundamentals",
		Description: "Selectors, the cascade, specificity, colors and typography.",
		Category:    domain.CategoryCSS,
		Path:        "/docs/css/fundamentals",
		Icon:        domain.IconDoc,
	},
	{
		Title:       "CSS Flexbox & Grid",
		Description: "Modern layout with flexbox and grid, alignment and responsive patterns.",
		Category:    domain.CategoryCSS,
		Path:        "/docs/css/layout",
		Icon:        domain.IconDoc,
	},
	{
		Title:       "C++ Getting Started",
		Description: "Compiling your first C++ program, variables, types and I/O streams.",
		Category:    domain.CategoryCPP,
		Path:        "/docs/cpp/getting-started",
		Icon:        domain.IconDoc,
	},
	{
		Title:       "C++ Pointers & Memory",
		Description: "Pointers, references, dynamic allocation and RAII in C++.",
		Category:    domain.CategoryCPP,
		Path:        "/docs/cpp/pointers",
		Icon:        domain.IconDoc,
	},
	{
		Title:       "Java Basics",
		Description: "Classes, the main method, primitives, strings and control structures.",
		Category:    domain.CategoryJava,
		Path:        "/docs/java/basics",
		Icon:        domain.IconDoc,
	},
	{
		Title:       "Java Collections",
		Description: "Lists, maps, sets, iteration and the collections framework.",
		Category:    domain.CategoryJava,
		Path:        "/docs/java/collections",
		Icon:        domain.IconDoc,
	},
	{
		Title:       "Machine Learning Path",
		Description: "A guided path from linear regression to neural networks and evaluation.",
		Category:    domain.CategoryAIML,
		Path:        "/paths/machine-learning",
		Icon:        domain.IconPath,
	},
	{
		Title:       "AI Engineering Path",
		Description: "Prompting, embeddings, retrieval and building applications on LLM APIs.",
		Category:    domain.CategoryAIML,
		Path:        "/paths/ai-engineering",
		Icon:        domain.IconPath,
	},
	{
		Title:       "Web Developer Path",
		Description: "HTML, CSS and JavaScript combined into a full front-end curriculum.",
		Category:    domain.CategoryGeneral,
		Path:        "/paths/web-developer",
		Icon:        domain.IconPath,
	},
	{
		Title:       "Choosing Your First Language",
		Description: "A guide comparing Python, JavaScript and Java for complete beginners.",
		Category:    domain.CategoryGeneral,
		Path:        "/guides/first-language",
		Icon:        domain.IconGuide,
	},
	{
		Title:       "Setting Up Your Editor",
		Description: "Editor installation, extensions and settings for a smooth start.",
		Category:    domain.CategoryGeneral,
		Path:        "/guides/editor-setup",
		Icon:        domain.IconGuide,
	},
}

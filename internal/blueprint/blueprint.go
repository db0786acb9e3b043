// Package blueprint holds the built-in tree description: the skeleton of the
// manufacturing management API backend (Express + Prisma + Kafka).
package blueprint

import "github.com/mfgforge/mfg-scaffold/internal/tree"

// Name is the document name of the built-in blueprint.
const Name = "backend"

// Backend returns the backend skeleton. Each call builds a new value, so
// callers may modify the result freely.
func Backend() tree.Directory {
	f := tree.File

	return tree.Dir(
		tree.Sub("backend", tree.Dir(
			tree.Sub(".github", tree.Dir(
				tree.Sub("workflows", tree.Leaves(f("ci.yml"))),
			)),
			tree.Sub("prisma", tree.Leaves(f("schema.prisma"), tree.EmptyDir("migrations"))),
			tree.Sub("src", source()),
			tree.Sub("scripts", tree.Leaves(f("db-init.sh"), f("start-dev.sh"))),
			tree.Leaves(
				f(".env.example"),
				f(".eslintrc.cjs"),
				f(".prettierrc"),
				f("tsconfig.json"),
				f("package.json"),
				f("docker-compose.yml"),
				f("Dockerfile"),
				f("README.md"),
			),
		)),
	)
}

// Document wraps Backend in a tree document.
func Document() *tree.Document {
	return &tree.Document{
		Version: tree.CurrentVersion,
		Name:    Name,
		Root:    Backend(),
	}
}

func source() tree.Directory {
	f := tree.File

	return tree.Dir(
		tree.Leaves(f("app.ts"), f("server.ts"), f("index.ts")),
		tree.Sub("config", tree.Leaves(f("env.ts"), f("logger.ts"), f("prisma.ts"), f("kafka.ts"))),
		tree.Sub("db", tree.Leaves()),
		tree.Sub("modules", modules()),
		tree.Sub("events", tree.Leaves(
			f("index.ts"),
			f("mo.events.ts"),
			f("wo.events.ts"),
			f("stock.events.ts"),
			f("bom.events.ts"),
			f("workcenter.events.ts"),
			f("search.indexer.ts"),
		)),
		tree.Sub("services", tree.Leaves(
			f("scheduling.service.ts"),
			f("vector.service.ts"),
			f("reporting.service.ts"),
		)),
		tree.Sub("libs", tree.Leaves(f("jwt.ts"), f("errors.ts"), f("pagination.ts"))),
		tree.Sub("middleware", tree.Leaves(f("auth.middleware.ts"), f("error.middleware.ts"))),
		tree.Sub("types", tree.Leaves(f("events.ts"))),
		tree.Sub("tests", tree.Leaves()),
	)
}

func modules() tree.Directory {
	f := tree.File

	return tree.Dir(
		tree.Sub("auth", tree.Dir(
			tree.Leaves(f("auth.controller.ts"), f("auth.routes.ts"), f("auth.service.ts")),
			tree.Sub("dto", tree.Leaves(f("login.dto.ts"), f("signup.dto.ts"))),
			tree.Sub("tests", tree.Leaves()),
		)),
		tree.Sub("users", tree.Leaves(f("user.service.ts"), f("user.model.ts"), f("user.routes.ts"))),
		tree.Sub("manufacturing", tree.Dir(
			tree.Leaves(f("mo.controller.ts"), f("mo.routes.ts"), f("mo.service.ts")),
			tree.Sub("dto", tree.Leaves()),
		)),
		tree.Sub("workorder", tree.Leaves()),
		tree.Sub("stock", tree.Leaves()),
		tree.Sub("bom", tree.Leaves()),
		tree.Sub("workcenter", tree.Leaves()),
	)
}

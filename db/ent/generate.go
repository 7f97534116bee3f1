package main

import (
	"log"

	"entgo.io/ent/entc"
	"entgo.io/ent/entc/gen"
)

func main() {
	err := entc.Generate(
		"./db/ent/schema",
		&gen.Config{
			Target:  "gen/ent",
			Package: "github.com/InsightEd01/script-sense-grade-ai-sub001/gen/ent",
			Schema:  "github.com/InsightEd01/script-sense-grade-ai-sub001/db/ent/schema",
		},
	)
	if err != nil {
		log.Fatal(err)
	}
}

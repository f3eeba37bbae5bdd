package datapack

import "strings"

const packMcmeta = "{\r\n" +
	"\t\"pack\": {\r\n" +
	"\t\t\"pack_format\": 4,\r\n" +
	"\t\t\"description\": \"\"\r\n" +
	"\t}\r\n" +
	"}\r\n"

const namespaceLoadFunction = "gamerule maxCommandChainLength 2147483647\r\n" +
	"scoreboard objectives add craftlang dummy\r\n"

// EmitPackMeta writes the fixed pack.mcmeta descriptor at the datapack
// root.
func EmitPackMeta(w Writer) error {
	f, err := w.Create("pack.mcmeta")
	if err != nil {
		return err
	}
	defer f.Close()
	_, err = f.Write([]byte(packMcmeta))
	return err
}

// EmitNamespaceLoad writes the namespace's own `.load.mcfunction`, which
// sets the command-chain limit and creates the shared "craftlang"
// scoreboard objective every generated function relies on. components is
// the already-ASCII-folded namespace path, e.g. ["mypack", "sub"].
func EmitNamespaceLoad(w Writer, components []string) error {
	f, err := w.Create(functionsPath(components, ".load"))
	if err != nil {
		return err
	}
	defer f.Close()
	_, err = f.Write([]byte(namespaceLoadFunction))
	return err
}

// EmitLoadTag writes the vanilla `data/minecraft/tags/functions/load.json`
// tag referencing the namespace's own load function.
func EmitLoadTag(w Writer, components []string) error {
	f, err := w.Create("data/minecraft/tags/functions/load.json")
	if err != nil {
		return err
	}
	defer f.Close()

	segments := append(append([]string{}, components[1:]...), ".load")
	ref := components[0] + ":" + strings.Join(segments, "/")
	content := "{\r\n" +
		"\t\"values\": [\r\n" +
		"\t\t\"" + ref + "\"\r\n" +
		"\t]\r\n" +
		"}\r\n"
	_, err = f.Write([]byte(content))
	return err
}

// functionsPath joins namespace components the way a function named name
// is laid out on disk: data/<namespace0>/functions/<rest...>/<name>.mcfunction.
func functionsPath(components []string, name string) string {
	parts := append([]string{"data", components[0], "functions"}, components[1:]...)
	return strings.Join(parts, "/") + "/" + name + ".mcfunction"
}

// FunctionPath is the exported form of functionsPath, used by the code
// generator to place per-function and auxiliary .mcfunction files under
// the same namespace directory.
func FunctionPath(components []string, name string) string {
	return functionsPath(components, name)
}

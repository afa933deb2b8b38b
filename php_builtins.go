package bracken

// phpBuiltins is the static global candidate table for PHP: superglobals,
// magic constants, keywords, scalar types, core classes, and a selection of
// everyday library functions. Plain data, shared with every PHP Document.
var phpBuiltins = []Candidate{
	// Superglobals.
	{Name: "$GLOBALS", Kind: "superglobal"},
	{Name: "$_SERVER", Kind: "superglobal"},
	{Name: "$_GET", Kind: "superglobal"},
	{Name: "$_POST", Kind: "superglobal"},
	{Name: "$_FILES", Kind: "superglobal"},
	{Name: "$_COOKIE", Kind: "superglobal"},
	{Name: "$_SESSION", Kind: "superglobal"},
	{Name: "$_REQUEST", Kind: "superglobal"},
	{Name: "$_ENV", Kind: "superglobal"},
	{Name: "$this", Kind: "superglobal"},

	// Constants.
	{Name: "true", Kind: "constant"},
	{Name: "false", Kind: "constant"},
	{Name: "null", Kind: "constant"},
	{Name: "PHP_EOL", Kind: "constant"},
	{Name: "PHP_VERSION", Kind: "constant"},
	{Name: "PHP_INT_MAX", Kind: "constant"},
	{Name: "PHP_INT_MIN", Kind: "constant"},
	{Name: "PHP_INT_SIZE", Kind: "constant"},
	{Name: "PHP_FLOAT_EPSILON", Kind: "constant"},
	{Name: "PHP_FLOAT_MAX", Kind: "constant"},
	{Name: "PHP_FLOAT_MIN", Kind: "constant"},
	{Name: "M_PI", Kind: "constant"},
	{Name: "M_E", Kind: "constant"},
	{Name: "E_ALL", Kind: "constant"},
	{Name: "E_ERROR", Kind: "constant"},
	{Name: "E_WARNING", Kind: "constant"},
	{Name: "E_NOTICE", Kind: "constant"},
	{Name: "DIRECTORY_SEPARATOR", Kind: "constant"},
	{Name: "__LINE__", Kind: "constant"},
	{Name: "__FILE__", Kind: "constant"},
	{Name: "__DIR__", Kind: "constant"},
	{Name: "__FUNCTION__", Kind: "constant"},
	{Name: "__CLASS__", Kind: "constant"},
	{Name: "__METHOD__", Kind: "constant"},
	{Name: "__NAMESPACE__", Kind: "constant"},

	// Keywords.
	{Name: "abstract", Kind: "keyword"},
	{Name: "break", Kind: "keyword"},
	{Name: "case", Kind: "keyword"},
	{Name: "catch", Kind: "keyword"},
	{Name: "class", Kind: "keyword"},
	{Name: "const", Kind: "keyword"},
	{Name: "continue", Kind: "keyword"},
	{Name: "declare", Kind: "keyword"},
	{Name: "default", Kind: "keyword"},
	{Name: "do", Kind: "keyword"},
	{Name: "echo", Kind: "keyword"},
	{Name: "else", Kind: "keyword"},
	{Name: "elseif", Kind: "keyword"},
	{Name: "empty", Kind: "keyword"},
	{Name: "enum", Kind: "keyword"},
	{Name: "extends", Kind: "keyword"},
	{Name: "final", Kind: "keyword"},
	{Name: "finally", Kind: "keyword"},
	{Name: "fn", Kind: "keyword"},
	{Name: "for", Kind: "keyword"},
	{Name: "foreach", Kind: "keyword"},
	{Name: "function", Kind: "keyword"},
	{Name: "global", Kind: "keyword"},
	{Name: "if", Kind: "keyword"},
	{Name: "implements", Kind: "keyword"},
	{Name: "include", Kind: "keyword"},
	{Name: "include_once", Kind: "keyword"},
	{Name: "instanceof", Kind: "keyword"},
	{Name: "interface", Kind: "keyword"},
	{Name: "isset", Kind: "keyword"},
	{Name: "list", Kind: "keyword"},
	{Name: "match", Kind: "keyword"},
	{Name: "namespace", Kind: "keyword"},
	{Name: "new", Kind: "keyword"},
	{Name: "print", Kind: "keyword"},
	{Name: "private", Kind: "keyword"},
	{Name: "protected", Kind: "keyword"},
	{Name: "public", Kind: "keyword"},
	{Name: "readonly", Kind: "keyword"},
	{Name: "require", Kind: "keyword"},
	{Name: "require_once", Kind: "keyword"},
	{Name: "return", Kind: "keyword"},
	{Name: "static", Kind: "keyword"},
	{Name: "switch", Kind: "keyword"},
	{Name: "throw", Kind: "keyword"},
	{Name: "trait", Kind: "keyword"},
	{Name: "try", Kind: "keyword"},
	{Name: "unset", Kind: "keyword"},
	{Name: "use", Kind: "keyword"},
	{Name: "while", Kind: "keyword"},
	{Name: "yield", Kind: "keyword"},

	// Types.
	{Name: "array", Kind: "type"},
	{Name: "bool", Kind: "type"},
	{Name: "callable", Kind: "type"},
	{Name: "float", Kind: "type"},
	{Name: "int", Kind: "type"},
	{Name: "iterable", Kind: "type"},
	{Name: "mixed", Kind: "type"},
	{Name: "never", Kind: "type"},
	{Name: "object", Kind: "type"},
	{Name: "parent", Kind: "type"},
	{Name: "self", Kind: "type"},
	{Name: "string", Kind: "type"},
	{Name: "void", Kind: "type"},

	// Core classes.
	{Name: "ArrayObject", Kind: "class"},
	{Name: "Closure", Kind: "class"},
	{Name: "DateTime", Kind: "class"},
	{Name: "DateTimeImmutable", Kind: "class"},
	{Name: "Error", Kind: "class"},
	{Name: "Exception", Kind: "class"},
	{Name: "Generator", Kind: "class"},
	{Name: "InvalidArgumentException", Kind: "class"},
	{Name: "RuntimeException", Kind: "class"},
	{Name: "stdClass", Kind: "class"},
	{Name: "Stringable", Kind: "class"},
	{Name: "Throwable", Kind: "class"},
	{Name: "TypeError", Kind: "class"},
	{Name: "ValueError", Kind: "class"},

	// Everyday functions.
	{Name: "array_filter", Kind: "function"},
	{Name: "array_key_exists", Kind: "function"},
	{Name: "array_keys", Kind: "function"},
	{Name: "array_map", Kind: "function"},
	{Name: "array_merge", Kind: "function"},
	{Name: "array_search", Kind: "function"},
	{Name: "array_values", Kind: "function"},
	{Name: "count", Kind: "function"},
	{Name: "explode", Kind: "function"},
	{Name: "file_get_contents", Kind: "function"},
	{Name: "file_put_contents", Kind: "function"},
	{Name: "implode", Kind: "function"},
	{Name: "in_array", Kind: "function"},
	{Name: "intval", Kind: "function"},
	{Name: "is_array", Kind: "function"},
	{Name: "is_callable", Kind: "function"},
	{Name: "is_int", Kind: "function"},
	{Name: "is_null", Kind: "function"},
	{Name: "is_numeric", Kind: "function"},
	{Name: "is_string", Kind: "function"},
	{Name: "json_decode", Kind: "function"},
	{Name: "json_encode", Kind: "function"},
	{Name: "preg_match", Kind: "function"},
	{Name: "preg_replace", Kind: "function"},
	{Name: "preg_split", Kind: "function"},
	{Name: "printf", Kind: "function"},
	{Name: "print_r", Kind: "function"},
	{Name: "sprintf", Kind: "function"},
	{Name: "str_contains", Kind: "function"},
	{Name: "str_replace", Kind: "function"},
	{Name: "strlen", Kind: "function"},
	{Name: "strpos", Kind: "function"},
	{Name: "strtolower", Kind: "function"},
	{Name: "strtoupper", Kind: "function"},
	{Name: "strval", Kind: "function"},
	{Name: "substr", Kind: "function"},
	{Name: "trim", Kind: "function"},
	{Name: "var_dump", Kind: "function"},
}

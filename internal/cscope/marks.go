package cscope

// Mark is the single-byte tag that precedes a token in the database,
// always after a tab. The byte values are fixed by the cscope format.
type Mark byte

const (
	MarkFile       Mark = '@' // file boundary
	MarkFuncDef    Mark = '$' // function definition
	MarkFuncCall   Mark = '`' // function call
	MarkFuncEnd    Mark = '}' // function end
	MarkDefine     Mark = '#' // #define
	MarkDefineEnd  Mark = ')' // #define end
	MarkInclude    Mark = '~' // #include
	MarkAssignment Mark = '=' // direct assignment, increment, decrement
	MarkDefEnd     Mark = ';' // enum/struct/union definition end
	MarkClassDef   Mark = 'c' // class definition
	MarkEnumDef    Mark = 'e' // enum definition
	MarkGlobalDef  Mark = 'g' // other global definition
	MarkLocalDef   Mark = 'l' // function/block local definition
	MarkMemberDef  Mark = 'm' // enum/struct/union member or global definition
	MarkParamDef   Mark = 'p' // function parameter definition
	MarkStructDef  Mark = 's' // struct definition
	MarkTypedefDef Mark = 't' // typedef definition
	MarkUnionDef   Mark = 'u' // union definition
	MarkUnknown    Mark = 0   // anything outside the fixed table
)

var knownMarks = map[byte]Mark{
	'@': MarkFile,
	'$': MarkFuncDef,
	'`': MarkFuncCall,
	'}': MarkFuncEnd,
	'#': MarkDefine,
	')': MarkDefineEnd,
	'~': MarkInclude,
	'=': MarkAssignment,
	';': MarkDefEnd,
	'c': MarkClassDef,
	'e': MarkEnumDef,
	'g': MarkGlobalDef,
	'l': MarkLocalDef,
	'm': MarkMemberDef,
	'p': MarkParamDef,
	's': MarkStructDef,
	't': MarkTypedefDef,
	'u': MarkUnionDef,
}

// ClassifyMark maps a raw byte to its Mark. Total: bytes outside the
// fixed table classify as MarkUnknown rather than failing, so future
// mark characters never abort a parse.
func ClassifyMark(b byte) Mark {
	if m, ok := knownMarks[b]; ok {
		return m
	}
	return MarkUnknown
}

var markNames = map[Mark]string{
	MarkFile:       "file",
	MarkFuncDef:    "function-def",
	MarkFuncCall:   "function-call",
	MarkFuncEnd:    "function-end",
	MarkDefine:     "define",
	MarkDefineEnd:  "define-end",
	MarkInclude:    "include",
	MarkAssignment: "assignment",
	MarkDefEnd:     "definition-end",
	MarkClassDef:   "class",
	MarkEnumDef:    "enum",
	MarkGlobalDef:  "global",
	MarkLocalDef:   "local",
	MarkMemberDef:  "member",
	MarkParamDef:   "param",
	MarkStructDef:  "struct",
	MarkTypedefDef: "typedef",
	MarkUnionDef:   "union",
	MarkUnknown:    "unknown",
}

// String returns a short lowercase name for the mark, "unknown" for
// anything outside the table.
func (m Mark) String() string {
	if name, ok := markNames[m]; ok {
		return name
	}
	return "unknown"
}

// MarkByName resolves a display name back to its Mark. Used by the
// symbols command's --kind filter. Returns MarkUnknown, false for
// names not in the table ("unknown" itself resolves true).
func MarkByName(name string) (Mark, bool) {
	for m, n := range markNames {
		if n == name {
			return m, true
		}
	}
	return MarkUnknown, false
}

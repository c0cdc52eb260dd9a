package minilang

import "fmt"

// Config is a typed settings map, following the same typed-value-box
// discipline regardless of which setting is read or written.
type Config map[string]*cfgVal

// Scoping names the two policies supported for procedure application.
type Scoping string

const (
	ScopingStatic  Scoping = "static"
	ScopingDynamic Scoping = "dynamic"
)

// NewConfig creates a configuration object primed with defaults: a
// 1024-cell heap, static scoping, and `intp` resolved by evaluating its
// argument rather than inspecting the raw AST node.
func NewConfig() *Config {
	m := make(Config)
	m.SetInt("heap.capacity", 1024)
	m.SetString("eval.scoping", string(ScopingStatic))
	m.SetBool("eval.intp_syntactic", false)
	return &m
}

func (c *Config) HeapCapacity() int {
	return c.GetInt("heap.capacity")
}

func (c *Config) SetHeapCapacity(n int) {
	c.SetInt("heap.capacity", n)
}

func (c *Config) Scoping() Scoping {
	switch Scoping(c.GetString("eval.scoping")) {
	case ScopingDynamic:
		return ScopingDynamic
	default:
		return ScopingStatic
	}
}

func (c *Config) SetScoping(s Scoping) {
	c.SetString("eval.scoping", string(s))
}

// IntpSyntactic reports whether `intp` should use a syntactic test of its
// raw argument node (almost certainly surprising for anything but a bare
// literal) instead of evaluating it.
func (c *Config) IntpSyntactic() bool {
	return c.GetBool("eval.intp_syntactic")
}

func (c *Config) SetIntpSyntactic(v bool) {
	c.SetBool("eval.intp_syntactic", v)
}

type cfgValType int

const (
	cfgValType_Undefined cfgValType = iota
	cfgValType_Bool
	cfgValType_Int
	cfgValType_String
)

func (vt cfgValType) String() string {
	return map[cfgValType]string{
		cfgValType_Undefined: "undefined",
		cfgValType_Bool:      "bool",
		cfgValType_Int:       "int",
		cfgValType_String:    "string",
	}[vt]
}

type cfgVal struct {
	typ      cfgValType
	asBool   bool
	asInt    int
	asString string
}

// assignType is mostly for preventing programming errors
func (v *cfgVal) assignType(vt cfgValType) {
	if v.typ != vt && v.typ != cfgValType_Undefined {
		panic(fmt.Sprintf("Can't assign `%s` to type `%s`", vt, v.typ))
	}
	v.typ = vt
}

func (v *cfgVal) checkType(vt cfgValType) {
	if v.typ != vt {
		panic(fmt.Sprintf("Can't retrieve `%s` from `%s` variable", vt, v.typ))
	}
}

func (c *Config) SetBool(path string, v bool) {
	(*c)[path] = &cfgVal{}
	(*c)[path].assignType(cfgValType_Bool)
	(*c)[path].asBool = v
}

func (c *Config) SetInt(path string, v int) {
	(*c)[path] = &cfgVal{}
	(*c)[path].assignType(cfgValType_Int)
	(*c)[path].asInt = v
}

func (c *Config) SetString(path string, v string) {
	(*c)[path] = &cfgVal{}
	(*c)[path].assignType(cfgValType_String)
	(*c)[path].asString = v
}

func (c *Config) GetBool(path string) bool {
	if val, ok := (*c)[path]; ok {
		val.checkType(cfgValType_Bool)
		return val.asBool
	}
	panic(fmt.Sprintf("Bool setting `%s` does not exist", path))
}

func (c *Config) GetInt(path string) int {
	if val, ok := (*c)[path]; ok {
		val.checkType(cfgValType_Int)
		return val.asInt
	}
	panic(fmt.Sprintf("Int setting `%s` does not exist", path))
}

func (c *Config) GetString(path string) string {
	if val, ok := (*c)[path]; ok {
		val.checkType(cfgValType_String)
		return val.asString
	}
	panic(fmt.Sprintf("String setting `%s` does not exist", path))
}

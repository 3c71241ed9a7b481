package devops

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLogErrorAt(t *testing.T) {
	var buf bytes.Buffer
	LogErrorAt(&buf, "math_test.go", 12, "%s failed", "math/Sub")
	LogErrorAt(&buf, "", 0, "line one\nline two")

	assert.Equal(t,
		"##vso[task.logissue type=error;sourcepath=math_test.go;linenumber=12]math/Sub failed\n"+
			"##vso[task.logissue type=error]line one%0Aline two\n",
		buf.String())
}

func TestGroups(t *testing.T) {
	var buf bytes.Buffer
	outer := OpenGroup(&buf, "outer")
	OpenGroup(&buf, "inner")
	outer.Close()

	assert.Equal(t, "##[group]outer\n##[group]inner\n##[endgroup]\n##[endgroup]\n", buf.String())
	assert.Empty(t, groups)
}

package rpc

import (
	"reflect"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewsService_SMDMatchesMethods(t *testing.T) {
	info := NewsService{}.SMD()
	names := reflect.ValueOf(RPC.NewsService)

	typ := reflect.TypeOf(NewsService{})
	var methods []string
	for i := 0; i < typ.NumMethod(); i++ {
		m := typ.Method(i)
		if m.Name == "SMD" || m.Name == "Invoke" {
			continue
		}
		methods = append(methods, m.Name)

		t.Run(m.Name, func(t *testing.T) {
			svc, ok := info.Methods[m.Name]
			require.True(t, ok, "method is missing from SMD")

			// receiver and context are not RPC params
			assert.Len(t, svc.Parameters, m.Type.NumIn()-2)
			assert.Equal(t, m.Type.Out(0).Kind() == reflect.Ptr, svc.Returns.Optional)

			rpcName := names.FieldByName(m.Name)
			require.True(t, rpcName.IsValid(), "method is missing from RPC names")
			assert.Equal(t, strings.ToLower(m.Name), rpcName.String())
		})
	}

	assert.Len(t, info.Methods, len(methods))
}

package ui

import "github.com/vango-dev/vango-ant/pkg/vdom"

// Container names recognized by RenderEmpty.
const (
	EmptyTable      = "Table"
	EmptyList       = "List"
	EmptySelect     = "Select"
	EmptyTreeSelect = "TreeSelect"
	EmptyCascader   = "Cascader"
	EmptyTransfer   = "Transfer"
	EmptyMentions   = "Mentions"
)

// RenderEmpty is the default placeholder dispatcher. Every container currently
// renders nothing; unknown names fall through to the same result.
func RenderEmpty(componentName string) *vdom.VNode {
	switch componentName {
	case EmptyTable, EmptyList:
		return nil
	case EmptySelect, EmptyTreeSelect, EmptyCascader, EmptyTransfer, EmptyMentions:
		return nil
	default:
		return nil
	}
}

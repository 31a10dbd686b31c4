package chain

import "strings"

// ExtractCreatedObjectID 从交易结果中提取新建对象的 ID。
// 按可靠程度依次尝试三种来源：
//  1. objectChanges 中 type 为 created 且对象类型匹配的条目
//  2. 旧格式 effects.created 的第一个对象引用
//  3. 结果上的直接 objectId 字段
//
// 三者都没有时返回空串，由调用方决定如何降级。
func ExtractCreatedObjectID(result *CallResult, typeHint string) string {
	if result == nil {
		return ""
	}

	for _, change := range result.ObjectChanges {
		if change.Type != "created" {
			continue
		}
		if typeHint == "" || strings.Contains(change.ObjectType, typeHint) {
			return change.ObjectID
		}
	}

	if result.Effects != nil && len(result.Effects.Created) > 0 {
		if id := result.Effects.Created[0].Reference.ObjectID; id != "" {
			return id
		}
	}

	return result.ObjectID
}

package chain

// ArgKind 交易参数类型
type ArgKind string

const (
	ArgObject    ArgKind = "object"
	ArgPure      ArgKind = "pure"
	ArgSplitCoin ArgKind = "split_coin"
)

// CallArg 单个交易参数
type CallArg struct {
	Kind     ArgKind     `json:"kind"`
	ObjectID string      `json:"objectId,omitempty"`
	Value    interface{} `json:"value,omitempty"`
	// SplitAmount 从 gas 币拆分的支付金额（MIST）
	SplitAmount uint64 `json:"splitAmount,omitempty"`
}

// CallDescriptor 一次合约调用的完整描述
type CallDescriptor struct {
	Target    string    `json:"target"`
	Arguments []CallArg `json:"arguments"`
}

// ObjectChange 交易产生的对象变更
type ObjectChange struct {
	Type       string `json:"type"`
	ObjectType string `json:"objectType"`
	ObjectID   string `json:"objectId"`
}

// ObjectRef 对象引用
type ObjectRef struct {
	ObjectID string `json:"objectId"`
}

// CreatedObject 旧格式交易结果中的新建对象
type CreatedObject struct {
	Reference ObjectRef `json:"reference"`
}

// Effects 旧格式交易副作用
type Effects struct {
	Created []CreatedObject `json:"created"`
}

// CallResult 交易执行结果。不同节点版本返回的字段集合不同，
// 三类字段都可能缺失。
type CallResult struct {
	Digest        string         `json:"digest"`
	ObjectChanges []ObjectChange `json:"objectChanges,omitempty"`
	Effects       *Effects       `json:"effects,omitempty"`
	ObjectID      string         `json:"objectId,omitempty"`
}

// ObjectArg 构造对象参数
func ObjectArg(id string) CallArg {
	return CallArg{Kind: ArgObject, ObjectID: id}
}

// PureArg 构造纯值参数
func PureArg(v interface{}) CallArg {
	return CallArg{Kind: ArgPure, Value: v}
}

// SplitCoinArg 构造支付参数：执行时从 gas 币拆出指定金额
func SplitCoinArg(amount uint64) CallArg {
	return CallArg{Kind: ArgSplitCoin, SplitAmount: amount}
}

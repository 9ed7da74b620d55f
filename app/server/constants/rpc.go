package constants

// RPC 过程挂载的路径前缀
const RPCPrefix = "/rpc"

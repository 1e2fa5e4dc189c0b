package remote

import (
	"net/rpc"

	"github.com/pkg/errors"
)

func New(addr string) (*Client, error) {
	client, err := rpc.DialHTTP("tcp", addr)
	if err != nil {
		return nil, errors.Wrapf(err, "dial %s failed", addr)
	}

	return &Client{rpc: client}, nil
}

type Client struct {
	rpc *rpc.Client
}

func (c *Client) Convert(req *ConvertRequest) (*ConvertResponse, error) {
	resp := &ConvertResponse{}
	if err := c.rpc.Call("Service.Convert", req, resp); err != nil {
		return nil, errors.Wrap(err, "remote convert failed")
	}
	return resp, nil
}

func (c *Client) Close() error {
	return c.rpc.Close()
}

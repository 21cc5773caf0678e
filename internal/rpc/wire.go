package rpc

import (
	"fmt"

	"google.golang.org/protobuf/encoding/protowire"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/timestamppb"
)

// Field numbers follow posts.proto.

func (p *Post) appendWire(b []byte) []byte {
	b = appendInt64(b, 1, p.ID)
	b = appendString(b, 2, p.Title)
	b = appendString(b, 3, p.Description)
	b = appendInt64(b, 4, p.CreatorID)
	b = appendBool(b, 5, p.IsPrivate)
	b = appendStrings(b, 6, p.Tags)
	b = appendTimestamp(b, 7, p.CreatedAt)
	b = appendTimestamp(b, 8, p.UpdatedAt)
	return b
}

func (p *Post) readWire(b []byte) error {
	*p = Post{}
	return readFields(b, func(f wireField) error {
		var err error
		switch f.num {
		case 1:
			p.ID = int64(f.varint)
		case 2:
			p.Title = string(f.bytes)
		case 3:
			p.Description = string(f.bytes)
		case 4:
			p.CreatorID = int64(f.varint)
		case 5:
			p.IsPrivate = f.varint != 0
		case 6:
			p.Tags = append(p.Tags, string(f.bytes))
		case 7:
			p.CreatedAt, err = readTimestamp(f.bytes)
		case 8:
			p.UpdatedAt, err = readTimestamp(f.bytes)
		}
		return err
	})
}

func (r *CreatePostRequest) appendWire(b []byte) []byte {
	b = appendInt64(b, 1, r.CreatorID)
	b = appendString(b, 2, r.Title)
	b = appendString(b, 3, r.Description)
	b = appendBool(b, 4, r.IsPrivate)
	b = appendStrings(b, 5, r.Tags)
	return b
}

func (r *CreatePostRequest) readWire(b []byte) error {
	*r = CreatePostRequest{}
	return readFields(b, func(f wireField) error {
		switch f.num {
		case 1:
			r.CreatorID = int64(f.varint)
		case 2:
			r.Title = string(f.bytes)
		case 3:
			r.Description = string(f.bytes)
		case 4:
			r.IsPrivate = f.varint != 0
		case 5:
			r.Tags = append(r.Tags, string(f.bytes))
		}
		return nil
	})
}

func (r *GetPostRequest) appendWire(b []byte) []byte {
	b = appendInt64(b, 1, r.ID)
	b = appendInt64(b, 2, r.ViewerID)
	return b
}

func (r *GetPostRequest) readWire(b []byte) error {
	*r = GetPostRequest{}
	return readFields(b, func(f wireField) error {
		switch f.num {
		case 1:
			r.ID = int64(f.varint)
		case 2:
			r.ViewerID = int64(f.varint)
		}
		return nil
	})
}

func (r *UpdatePostRequest) appendWire(b []byte) []byte {
	b = appendInt64(b, 1, r.ID)
	b = appendInt64(b, 2, r.CallerID)
	if r.Title != nil {
		b = protowire.AppendTag(b, 3, protowire.BytesType)
		b = protowire.AppendString(b, *r.Title)
	}
	if r.Description != nil {
		b = protowire.AppendTag(b, 4, protowire.BytesType)
		b = protowire.AppendString(b, *r.Description)
	}
	if r.IsPrivate != nil {
		b = protowire.AppendTag(b, 5, protowire.VarintType)
		b = protowire.AppendVarint(b, protowire.EncodeBool(*r.IsPrivate))
	}
	if r.Tags != nil {
		b = protowire.AppendTag(b, 6, protowire.BytesType)
		b = protowire.AppendBytes(b, appendStrings(nil, 1, *r.Tags))
	}
	return b
}

func (r *UpdatePostRequest) readWire(b []byte) error {
	*r = UpdatePostRequest{}
	return readFields(b, func(f wireField) error {
		switch f.num {
		case 1:
			r.ID = int64(f.varint)
		case 2:
			r.CallerID = int64(f.varint)
		case 3:
			title := string(f.bytes)
			r.Title = &title
		case 4:
			description := string(f.bytes)
			r.Description = &description
		case 5:
			isPrivate := f.varint != 0
			r.IsPrivate = &isPrivate
		case 6:
			tags := []string{}
			err := readFields(f.bytes, func(inner wireField) error {
				if inner.num == 1 {
					tags = append(tags, string(inner.bytes))
				}
				return nil
			})
			if err != nil {
				return fmt.Errorf("tags: %w", err)
			}
			r.Tags = &tags
		}
		return nil
	})
}

func (r *DeletePostRequest) appendWire(b []byte) []byte {
	b = appendInt64(b, 1, r.ID)
	b = appendInt64(b, 2, r.CallerID)
	return b
}

func (r *DeletePostRequest) readWire(b []byte) error {
	*r = DeletePostRequest{}
	return readFields(b, func(f wireField) error {
		switch f.num {
		case 1:
			r.ID = int64(f.varint)
		case 2:
			r.CallerID = int64(f.varint)
		}
		return nil
	})
}

func (r *ListPostsRequest) appendWire(b []byte) []byte {
	b = appendInt64(b, 1, r.CreatorID)
	b = appendInt64(b, 2, int64(r.Page))
	b = appendInt64(b, 3, int64(r.PageSize))
	return b
}

func (r *ListPostsRequest) readWire(b []byte) error {
	*r = ListPostsRequest{}
	return readFields(b, func(f wireField) error {
		switch f.num {
		case 1:
			r.CreatorID = int64(f.varint)
		case 2:
			r.Page = int32(f.varint)
		case 3:
			r.PageSize = int32(f.varint)
		}
		return nil
	})
}

func (r *ListPostsResponse) appendWire(b []byte) []byte {
	for _, post := range r.Posts {
		b = protowire.AppendTag(b, 1, protowire.BytesType)
		b = protowire.AppendBytes(b, post.appendWire(nil))
	}
	b = appendInt64(b, 2, r.Total)
	b = appendInt64(b, 3, int64(r.Page))
	b = appendInt64(b, 4, int64(r.PageSize))
	b = appendInt64(b, 5, int64(r.TotalPages))
	return b
}

func (r *ListPostsResponse) readWire(b []byte) error {
	*r = ListPostsResponse{}
	return readFields(b, func(f wireField) error {
		switch f.num {
		case 1:
			post := new(Post)
			if err := post.readWire(f.bytes); err != nil {
				return fmt.Errorf("posts: %w", err)
			}
			r.Posts = append(r.Posts, post)
		case 2:
			r.Total = int64(f.varint)
		case 3:
			r.Page = int32(f.varint)
		case 4:
			r.PageSize = int32(f.varint)
		case 5:
			r.TotalPages = int32(f.varint)
		}
		return nil
	})
}

// appendInt64 writes a varint field. Negative int32 values are widened first,
// matching the protobuf encoding of int32.
func appendInt64(b []byte, num protowire.Number, v int64) []byte {
	if v == 0 {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.VarintType)
	return protowire.AppendVarint(b, uint64(v))
}

func appendBool(b []byte, num protowire.Number, v bool) []byte {
	if !v {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.VarintType)
	return protowire.AppendVarint(b, protowire.EncodeBool(v))
}

func appendString(b []byte, num protowire.Number, v string) []byte {
	if v == "" {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendString(b, v)
}

func appendStrings(b []byte, num protowire.Number, values []string) []byte {
	for _, v := range values {
		b = protowire.AppendTag(b, num, protowire.BytesType)
		b = protowire.AppendString(b, v)
	}
	return b
}

func appendTimestamp(b []byte, num protowire.Number, ts *timestamppb.Timestamp) []byte {
	if ts == nil {
		return b
	}
	data, err := proto.MarshalOptions{Deterministic: true}.Marshal(ts)
	if err != nil {
		// A Timestamp has only scalar fields and always marshals.
		return b
	}
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendBytes(b, data)
}

func readTimestamp(data []byte) (*timestamppb.Timestamp, error) {
	ts := new(timestamppb.Timestamp)
	if err := proto.Unmarshal(data, ts); err != nil {
		return nil, fmt.Errorf("timestamp: %w", err)
	}
	return ts, nil
}

// wireField is one decoded field. Varint values land in varint, length
// delimited values in bytes; other wire types are skipped.
type wireField struct {
	num    protowire.Number
	typ    protowire.Type
	varint uint64
	bytes  []byte
}

func readFields(b []byte, fn func(f wireField) error) error {
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return protowire.ParseError(n)
		}
		b = b[n:]

		f := wireField{num: num, typ: typ}
		switch typ {
		case protowire.VarintType:
			f.varint, n = protowire.ConsumeVarint(b)
		case protowire.BytesType:
			f.bytes, n = protowire.ConsumeBytes(b)
		default:
			n = protowire.ConsumeFieldValue(num, typ, b)
		}
		if n < 0 {
			return protowire.ParseError(n)
		}
		b = b[n:]

		if typ != protowire.VarintType && typ != protowire.BytesType {
			continue
		}
		if err := fn(f); err != nil {
			return err
		}
	}
	return nil
}

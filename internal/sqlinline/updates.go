package sqlinline

const QInsertChildUpdate = `--sql 059a70f9-65a2-40d1-883f-686186dfa536
insert into child_updates (child_id, title, content, photo_url)
values ($1::uuid, $2::text, $3::text, $4::text)
returning id, created_at;
`

const QListChildUpdates = `--sql ece8e687-a99a-4b28-834b-a8625bc3c956
select id, child_id, title, content, photo_url, created_at
from child_updates
where child_id = $1::uuid;
`

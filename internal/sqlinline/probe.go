package sqlinline

const QListPublicTables = `--sql c155f3d8-7502-40b2-87d8-445cc2d096af
select table_name
from information_schema.tables
where table_schema = 'public'
order by table_name;
`
